package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"log-router/pkg/kafka"
)

func main() {
	broker := flag.String("broker", "localhost:9092", "Kafka broker address")
	topic := flag.String("topic", "logs", "Kafka topic to publish to")
	rps := flag.Int("rps", 100, "Records per second")
	duration := flag.Duration("duration", 10*time.Second, "How long to publish")
	traceRatio := flag.Float64("trace-ratio", 0.2, "Fraction of records that carry a trace")
	flag.Parse()
	interval, err := tickInterval(*rps)
	if err != nil {
		log.Fatal(err)
	}

	producer := kafka.NewProducer(*broker, *topic)
	defer producer.Close()

	fmt.Printf("Starting loadgen: %d records/s for %s to topic %s\n", *rps, *duration, *topic)

	ctx := context.Background()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	end := time.Now().Add(*duration)
	count := 0

	for time.Now().Before(end) {
		<-ticker.C
		count++

		key := uuid.NewString()
		var value []byte
		if rand.Float64() < *traceRatio {
			value, err = traceRecord()
		} else {
			value, err = logRecord(key, count)
		}
		if err != nil {
			log.Fatalf("failed to build record: %v", err)
		}

		if err := producer.Publish(ctx, key, value); err != nil {
			log.Printf("failed to write message: %v", err)
		}
	}

	fmt.Printf("Load generation complete: %d records sent\n", count)
}

func tickInterval(rps int) (time.Duration, error) {
	if rps <= 0 {
		return 0, fmt.Errorf("--rps must be positive, got %d", rps)
	}
	return time.Second / time.Duration(rps), nil
}

// envelope wraps inner the way the log shipper does: the inner document is
// itself a JSON string in the log field.
func envelope(inner any) ([]byte, error) {
	b, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]string{"log": string(b)})
}

func logRecord(id string, seq int) ([]byte, error) {
	return envelope(map[string]any{
		"level": "info",
		"msg":   "Booked flight",
		"ref":   id,
		"seq":   seq,
		"time":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func traceRecord() ([]byte, error) {
	blob := make([]byte, 64)
	for i := range blob {
		blob[i] = byte(rand.IntN(256))
	}
	return envelope(map[string]any{
		"level": "info",
		"msg":   "trace",
		"trace": base64.StdEncoding.EncodeToString(blob),
	})
}

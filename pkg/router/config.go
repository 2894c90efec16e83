package router

// Config holds the settings every router entry point shares.
type Config struct {
	TraceCollectorURL string `env:"JAEGER_COLLECTOR_URL,required,notEmpty"`
	LogAggregatorURL  string `env:"STACKDRIVER_COLLECTOR_URL,required,notEmpty"`
	Region            string `env:"AWS_REGION,required,notEmpty"`
	GCPProject        string `env:"GOOGLE_CLOUD_PROJECT"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
}

// Location is the value of the location label on forwarded log entries.
func (c Config) Location() string {
	return "aws:" + c.Region
}

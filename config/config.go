package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/foomo/elementwalker/vo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "https://developer.mozilla.org/en-US/docs/Web/HTML/Element/"
	DefaultOutput  = "elements/elements-data.json"
	// empty keeps the http client's own User-Agent
	DefaultAgent   = ""
	DefaultTimeout = time.Second * 10
	DefaultDelay   = time.Millisecond * 500
)

type Config struct {
	// element pages live at BaseURL + name
	BaseURL      string
	Output       string
	Timeout      time.Duration
	Delay        time.Duration
	Agent       string
	CheckRobots bool
	// written in prometheus text format after a run, skipped when empty
	MetricsFile string
	Report      bool
	Debug       bool
	// empty means the built-in catalog
	Elements []string
}

func Default() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Output:  DefaultOutput,
		Timeout: DefaultTimeout,
		Delay:   DefaultDelay,
		Agent:   DefaultAgent,
	}
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	errValidate := conf.validate()
	if errValidate != nil {
		return nil, errValidate
	}
	return
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}

func (c *Config) validate() error {
	baseURL, errParse := url.Parse(c.BaseURL)
	if errParse != nil {
		return errParse
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return errors.New("baseurl needs a scheme and a host: " + c.BaseURL)
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	return nil
}

// ElementNames are the configured elements or the built-in catalog
func (c *Config) ElementNames() []vo.ElementName {
	if len(c.Elements) == 0 {
		return Catalog()
	}
	names := make([]vo.ElementName, 0, len(c.Elements))
	for _, e := range c.Elements {
		e = strings.TrimSpace(e)
		if e != "" {
			names = append(names, vo.ElementName(e))
		}
	}
	return names
}

package reports

import (
	"io"

	"github.com/foomo/elementwalker/vo"
	"gopkg.in/yaml.v3"
)

// Failures dumps every failed scrape result as yaml
func Failures(status vo.Status, w io.Writer) {
	printh, println, _ := printers(w)
	failed := filtered(status, vo.ScrapeResult.Failed)
	printh("failures", len(failed))
	for _, res := range failed {
		yamlBytes, errYaml := yaml.Marshal(res)
		if errYaml != nil {
			println("could not print", res.Name, errYaml)
		} else {
			println(string(yamlBytes))
		}
	}
}

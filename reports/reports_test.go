package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/foomo/elementwalker/vo"
	"github.com/stretchr/testify/assert"
)

func getStatus() vo.Status {
	rs := vo.NewResultSet()
	rs.Add(vo.ElementRecord{Name: "div", Description: "a container", Example: "<div></div>", Attributes: []string{"class"}})
	rs.Add(vo.NewFallbackRecord("blink"))
	rs.Add(vo.NewFallbackRecord("marquee"))
	rs.Add(vo.NewFallbackRecord("secret"))
	return vo.Status{
		Results:  rs,
		Duration: time.Second * 3,
		Scrapes: []vo.ScrapeResult{
			{Name: "div", Code: 200, Duration: time.Millisecond * 100},
			{Name: "blink", Code: 404, Duration: time.Millisecond * 400, ErrorKind: vo.ErrorKindTransport, Error: "unexpected status 404", Fallback: true},
			{Name: "marquee", Code: 200, Duration: time.Millisecond * 1500, ErrorKind: vo.ErrorKindParse, Error: "broken", Fallback: true},
			{Name: "secret", ErrorKind: vo.ErrorKindRobots, Error: "robots.txt does not allow access", Fallback: true},
		},
	}
}

func TestSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	Summary(getStatus(), buf)
	out := buf.String()
	assert.Contains(t, out, "summary 4 elements in 3s")
	assert.Contains(t, out, "ok 1\n")
	assert.Contains(t, out, "transport 1\n")
	assert.Contains(t, out, "parse 1\n")
	assert.Contains(t, out, "robots 1\n")
	assert.Contains(t, out, "200 2\n")
	assert.Contains(t, out, "404 1\n")
	assert.Contains(t, out, "fast")
}

func TestSummaryEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	Summary(vo.Status{Results: vo.NewResultSet()}, buf)
	assert.Contains(t, buf.String(), "summary 0 elements")
}

func TestErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	Errors(getStatus(), buf)
	out := buf.String()
	assert.True(t, strings.Index(out, "0 :") < strings.Index(out, "200 :"))
	assert.True(t, strings.Index(out, "200 :") < strings.Index(out, "404 :"))
	assert.Contains(t, out, "	 marquee")
	assert.NotContains(t, out, "div")
}

func TestHighscore(t *testing.T) {
	buf := &bytes.Buffer{}
	Highscore(getStatus(), buf, 2)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-2:]
	assert.Equal(t, "0 200 marquee 1.5s", last[0])
	assert.Equal(t, "1 404 blink 400ms", last[1])
}

func TestFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	Failures(getStatus(), buf)
	out := buf.String()
	assert.Contains(t, out, "failures 3")
	assert.Contains(t, out, "name: blink")
	assert.Contains(t, out, "kind: transport")
	assert.Contains(t, out, "duration: 400ms")
	assert.NotContains(t, out, "name: div")
}

package elementwalker

import (
	"fmt"
	"io"

	"github.com/foomo/elementwalker/vo"
)

func line(writer io.Writer) {
	fmt.Fprintln(writer, "------------------------------------------------------------------------")
}

func headline(writer io.Writer, v ...interface{}) {
	line(writer)
	v = append([]interface{}{"~"}, v...)
	fmt.Fprintln(writer, v...)
	line(writer)
}

// PrintStatus lists the elements that fell back to placeholder content
func PrintStatus(writer io.Writer, status vo.Status) {
	failed := status.Failed()
	if len(failed) == 0 {
		return
	}
	fmt.Fprintln(writer)
	headline(writer, "fallbacks:", len(failed), "of", len(status.Scrapes))
	for _, r := range failed {
		fmt.Fprintln(writer, r.ErrorKind, r.Name, r.Error)
	}
}

// PrintDone is the final summary after the results have been written
func PrintDone(writer io.Writer, filename string, status vo.Status) {
	fmt.Fprintf(writer, "\n✓ Done! Data saved to %s\n", filename)
	fmt.Fprintf(writer, "Total elements scraped: %d\n", status.Results.Len())
}

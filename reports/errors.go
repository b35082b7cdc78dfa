package reports

import (
	"io"
	"sort"

	"github.com/foomo/elementwalker/vo"
)

// Errors groups failed elements by the status code they got, 0 means no response
func Errors(status vo.Status, w io.Writer) {
	printh, println, _ := printers(w)
	printh("errors")
	errorBuckets := map[int][]vo.ElementName{}
	codes := sort.IntSlice{}
	for _, res := range filtered(status, vo.ScrapeResult.Failed) {
		_, bucketOK := errorBuckets[res.Code]
		if !bucketOK {
			codes = append(codes, res.Code)
		}
		errorBuckets[res.Code] = append(errorBuckets[res.Code], res.Name)
	}
	sort.Sort(codes)
	for _, code := range codes {
		println(code, ":")
		for _, name := range errorBuckets[code] {
			println("	", name)
		}
	}
}

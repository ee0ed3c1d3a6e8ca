package filter

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

var exportHeader = []string{"name", "region", "address", "phone", "longitude", "latitude"}

// WriteCSV writes one row per result. Every value is double-quoted with
// inner quotes doubled, and rows are separated by "\n".
func WriteCSV(w io.Writer, rs []Result) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, exportHeader)
	for _, r := range rs {
		p := r.Place
		bw.WriteByte('\n')
		writeRow(bw, []string{
			p.Name,
			p.Region(),
			p.DisplayAddress(),
			p.Phone,
			strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
		})
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
}

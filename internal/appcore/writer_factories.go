package appcore

import (
	"io"

	"beaconzone/internal/puzzle"
	"beaconzone/internal/writers"
)

// ResultWriterFactory starts the result writer selected on the command line.
type ResultWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewResultWriterFactory(format string, sort, header bool) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- puzzle.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Sort, w.Header, bufSize)
}

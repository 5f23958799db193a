// sim/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ccn-sim/ccn-sim/sim"
)

// WriteHistories writes each non-client node's queue-length history and
// each client's request/response stamps to CSV, under
// output/<simPath>/<id>_{queue,requests,responses}.csv. Header rows:
// "time,queue_size" / "path,time" / "path,time".
func WriteHistories(simPath string, routers []*sim.Node, clients []*sim.Node) error {
	dir := filepath.Join("output", simPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	for _, r := range routers {
		if err := writeQueueHistory(dir, r); err != nil {
			return err
		}
	}
	for _, c := range clients {
		if err := writeRequestTimes(dir, c); err != nil {
			return err
		}
		if err := writeResponseTimes(dir, c); err != nil {
			return err
		}
	}
	return nil
}

func writeQueueHistory(dir string, n *sim.Node) error {
	path := filepath.Join(dir, n.ID+"_queue.csv")
	w, closeFn, err := newWriter(path)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := w.Write([]string{"time", "queue_size"}); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, sample := range n.History.QueueSamples {
		row := []string{strconv.FormatInt(sample.Time, 10), strconv.Itoa(sample.QueueLen)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeRequestTimes(dir string, n *sim.Node) error {
	return writeNameTimeStamps(filepath.Join(dir, n.ID+"_requests.csv"), n.History.RequestTimes)
}

func writeResponseTimes(dir string, n *sim.Node) error {
	return writeNameTimeStamps(filepath.Join(dir, n.ID+"_responses.csv"), n.History.ResponseTimes)
}

func writeNameTimeStamps(path string, stamps []sim.NameTimeStamp) error {
	w, closeFn, err := newWriter(path)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := w.Write([]string{"path", "time"}); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, s := range stamps {
		row := []string{s.Name, strconv.FormatInt(s.Time, 10)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func newWriter(path string) (*csv.Writer, func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return csv.NewWriter(f), func() { _ = f.Close() }, nil
}

// pkg/compress/compress.go
package compress

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

const (
	successMark = "✓ "
	failureMark = "✗ "
)

// Compressor archives files one per ZIP into a destination directory.
// It owns its operation log; CompressMany calls on one instance are serialized.
type Compressor struct {
	opts    Options
	oplog   *OperationLog
	logger  logrus.FieldLogger
	batchMu sync.Mutex
}

// New validates opts, creates the destination directory and returns a Compressor.
// Failure to create the destination is the only fatal error of the engine.
func New(opts *Options) (*Compressor, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(o.Destination, 0755); err != nil {
		return nil, &DestinationError{Path: o.Destination, Err: err}
	}

	c := &Compressor{
		opts:   o,
		oplog:  NewOperationLog(o.Now),
		logger: o.Logger.WithField("destination", o.Destination),
	}
	c.logger.WithFields(logrus.Fields{
		"level":   o.Level,
		"threads": o.MaxThreads,
	}).Debug("compressor ready")

	return c, nil
}

// Level returns the clamped compression level
func (c *Compressor) Level() int { return c.opts.Level }

// Destination returns the destination directory
func (c *Compressor) Destination() string { return c.opts.Destination }

// Log returns the compressor's operation log
func (c *Compressor) Log() *OperationLog { return c.oplog }

// Stats returns a snapshot computed from the current log
func (c *Compressor) Stats() Stats {
	return Stats{
		OperationCount: c.oplog.Len(),
		LastEntry:      c.oplog.Last(),
		Level:          c.opts.Level,
		Destination:    c.opts.Destination,
	}
}

// ClearLog empties the operation log
func (c *Compressor) ClearLog() {
	c.oplog.Clear()
}

// CompressOne writes the archive for a validated path and logs the attempt
func (c *Compressor) CompressOne(path string) Outcome {
	name := filepath.Base(path)
	dst := ArchivePath(c.opts.Destination, path)
	entry := c.logger.WithFields(logrus.Fields{
		"file":    path,
		"archive": dst,
	})

	st, err := writeZip(path, dst, c.opts.Level, c.opts.Progress)
	if err != nil {
		msg := err.Error()
		c.oplog.Append(msg)
		entry.WithError(err).Warn("compression failed")
		c.emit(ProgressEvent{Type: EventError, FilePath: path})
		return Failure{Path: path, Message: msg, Err: err}
	}

	msg := fmt.Sprintf("file %s compressed successfully", name)
	c.oplog.Append(msg)
	entry.WithFields(logrus.Fields{
		"original":   st.origSize,
		"compressed": st.compSize,
	}).Debug("compressed")
	c.emit(ProgressEvent{
		Type:     EventFileComplete,
		FilePath: path,
		Current:  st.origSize,
		Total:    st.origSize,
	})

	return Success{
		Path:           path,
		ArchivePath:    dst,
		Message:        msg,
		OriginalSize:   st.origSize,
		CompressedSize: st.compSize,
	}
}

// CompressMany validates paths and archives every valid one.
// A failing file never stops the batch; messages keep input order with
// validation failures first.
func (c *Compressor) CompressMany(paths []string) *BatchResult {
	c.batchMu.Lock()
	defer c.batchMu.Unlock()

	v := Validate(paths)
	result := &BatchResult{
		FailureCount: len(v.Invalid),
		Invalid:      v.Invalid,
		Messages:     make([]string, 0, len(paths)),
	}

	for _, inv := range v.Invalid {
		result.Messages = append(result.Messages, failureMark+inv.Error())
		c.logger.WithFields(logrus.Fields{
			"file":   inv.Path,
			"reason": string(inv.Reason),
		}).Warn("skipping invalid file")
	}

	c.emit(ProgressEvent{Type: EventStart, Total: int64(len(v.Valid))})

	result.Outcomes = c.compressAll(v.Valid)
	for _, o := range result.Outcomes {
		switch o := o.(type) {
		case Success:
			result.SuccessCount++
			result.Messages = append(result.Messages, successMark+o.Message)
		case Failure:
			result.FailureCount++
			result.Messages = append(result.Messages, failureMark+o.Message)
		}
	}

	c.emit(ProgressEvent{
		Type:    EventComplete,
		Current: int64(result.SuccessCount),
		Total:   int64(len(v.Valid)),
	})
	c.logger.WithFields(logrus.Fields{
		"succeeded": result.SuccessCount,
		"failed":    result.FailureCount,
	}).Info("batch complete")

	return result
}

// compressAll runs CompressOne over paths and returns outcomes in input order.
// Paths are routed to workers by archive name, so files that overwrite each
// other's archive run on the same worker in input order.
func (c *Compressor) compressAll(paths []string) []Outcome {
	outcomes := make([]Outcome, len(paths))

	tracker := squeeze.NewPathTracker()
	for _, p := range paths {
		if dst := ArchivePath(c.opts.Destination, p); tracker.CheckDuplicate(dst) {
			c.logger.WithFields(logrus.Fields{
				"file":    p,
				"archive": dst,
			}).Warn("archive name already used in this batch, it will be overwritten")
		}
	}

	workers := min(c.opts.MaxThreads, len(paths))
	if workers <= 1 {
		for i, p := range paths {
			outcomes[i] = c.CompressOne(p)
		}
		return outcomes
	}

	queues := make([]chan int, workers)
	for i := range queues {
		queues[i] = make(chan int, len(paths))
	}

	var wg sync.WaitGroup
	for _, q := range queues {
		wg.Add(1)
		go func(q <-chan int) {
			defer wg.Done()
			for i := range q {
				outcomes[i] = c.CompressOne(paths[i])
			}
		}(q)
	}

	for i, p := range paths {
		w := archiveHash(ArchivePath(c.opts.Destination, p)) % uint64(workers)
		queues[w] <- i
	}
	for _, q := range queues {
		close(q)
	}
	wg.Wait()

	return outcomes
}

// archiveHash returns a consistent hash for an archive path, used to assign files to workers
func archiveHash(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}

func (c *Compressor) emit(event ProgressEvent) {
	if c.opts.Progress != nil {
		c.opts.Progress(event)
	}
}

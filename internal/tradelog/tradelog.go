package tradelog

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var mu sync.Mutex

// Entry is one trade-check record in the daily audit log.
type Entry struct {
	YourItems  string
	TheirItems string
	YourTotal  int64
	TheirTotal int64
	Verdict    string
	Unresolved []string
}

func logDir() string {
	if v := os.Getenv("VALUES_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func dailyFilepath(t time.Time) string {
	return filepath.Join(logDir(), t.UTC().Format("2006-01-02")+".log")
}

// Append writes one entry to today's audit file as a JSON line.
func Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()

	p := dailyFilepath(time.Now())
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	zl := zap.New(core)
	defer zl.Sync()

	zl.Info("trade_check",
		zap.String("your_items", e.YourItems),
		zap.String("their_items", e.TheirItems),
		zap.Int64("your_total", e.YourTotal),
		zap.Int64("their_total", e.TheirTotal),
		zap.String("verdict", e.Verdict),
		zap.Strings("unresolved", e.Unresolved),
	)
	return nil
}

// CompressOlder gzips audit files older than the retention window and
// removes the originals.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".log" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil || !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		if _, e2 := os.Stat(gz); e2 == nil {
			_ = os.Remove(p)
			return nil
		}

		in, e3 := os.Open(p)
		if e3 != nil {
			return nil
		}
		defer in.Close()

		out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if e4 != nil {
			return nil
		}
		gw := gzip.NewWriter(out)
		if _, e5 := io.Copy(gw, in); e5 == nil {
			_ = gw.Close()
			_ = out.Close()
			_ = os.Remove(p)
		} else {
			_ = gw.Close()
			_ = out.Close()
		}
		return nil
	})
}

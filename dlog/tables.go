package dlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/kshedden/gonpy"
	"github.com/sbinet/npyio"

	"github.com/jamwevan/MATH-440/field"
)

func tablePaths(dir string, q int) (expPath, logPath string) {
	return filepath.Join(dir, fmt.Sprintf("exp_q%d.npy", q)), filepath.Join(dir, fmt.Sprintf("log_q%d.npy", q))
}

// Write stores the tables in numpy format under dir.
func (ix *Index) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return fmt.Errorf("create table dir: %w", err)
	}
	expPath, logPath := tablePaths(dir, ix.f.Q())
	if err := writeNPY(expPath, ix.exp); err != nil {
		return err
	}
	return writeNPY(logPath, ix.log)
}

func writeNPY(path string, data []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := npyio.Write(f, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// reads a numpy file of uint32 values and reports on done
func asyncRead(path string, ptr *[]uint32, done chan<- error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		done <- fmt.Errorf("open %s: %w", path, err)
		return
	}
	data, err := r.GetUint32()
	if err != nil {
		done <- fmt.Errorf("read %s: %w", path, err)
		return
	}
	*ptr = data
	done <- nil
}

// Load reads tables previously stored by Write and checks them against f.
func Load(dir string, f *field.Field) (*Index, error) {
	expPath, logPath := tablePaths(dir, f.Q())
	ix := &Index{f: f}

	ch := make(chan error, 2)
	go asyncRead(expPath, &ix.exp, ch)
	go asyncRead(logPath, &ix.log, ch)
	err1, err2 := <-ch, <-ch
	if err := errors.Join(err1, err2); err != nil {
		return nil, err
	}
	if err := ix.verify(); err != nil {
		return nil, fmt.Errorf("stale tables in %s: %w", dir, err)
	}
	return ix, nil
}

// LoadOrGenerate returns cached tables from dir when they exist and match f,
// and otherwise generates them and stores them in dir.
func LoadOrGenerate(dir string, f *field.Field, progress io.Writer) (*Index, error) {
	expPath, _ := tablePaths(dir, f.Q())
	if _, err := os.Stat(expPath); err == nil {
		ix, err := Load(dir, f)
		if err == nil {
			log.Debug("Loaded discrete log tables", "dir", dir, "q", f.Q())
			return ix, nil
		}
		log.Warn("Regenerating discrete log tables", "dir", dir, "q", f.Q(), "err", err)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", expPath, err)
	}

	ix, err := Generate(f, progress)
	if err != nil {
		return nil, err
	}
	if err := ix.Write(dir); err != nil {
		return nil, err
	}
	log.Debug("Wrote discrete log tables", "dir", dir, "q", f.Q())
	return ix, nil
}

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

/**
 * @Author: wanglei
 * @File: logger_test
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/08/22 11:05
 */

func TestSetup(t *testing.T) {
	defer func() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
	}()
	if err := Setup(&Settings{Dir: t.TempDir(), Level: "loud"}); err == nil {
		t.Error("expect error for unknown level")
	}
	dir := t.TempDir()
	if err := Setup(&Settings{Dir: dir, Level: "debug"}); err != nil {
		t.Error(err)
		return
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expect debug level, actual: %s", logger.GetLevel())
	}
	Debugf("setup %s", dir)
	files, _ := filepath.Glob(filepath.Join(dir, "*.log"))
	if len(files) != 1 {
		t.Errorf("expect 1 log file, actual: %d", len(files))
	}
}

func TestWrappers(t *testing.T) {
	defer func() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
	}()
	dir := t.TempDir()
	if err := Setup(&Settings{Dir: dir, Level: "debug"}); err != nil {
		t.Error(err)
		return
	}
	Debugf("dispose %d", 1)
	Info("start")
	Infof("%d values disposed", 11)
	Warn("insert out of bounds")
	files, _ := filepath.Glob(filepath.Join(dir, "*.log"))
	if len(files) != 1 {
		t.Errorf("expect 1 log file, actual: %d", len(files))
		return
	}
	content, err := os.ReadFile(files[0])
	if err != nil {
		t.Error(err)
		return
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 4 {
		t.Errorf("expect 4 log lines, actual: %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "logger_test.go") {
			t.Errorf("expect caller file in log line: %s", line)
		}
	}
}

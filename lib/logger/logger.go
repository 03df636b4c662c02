package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

/**
 * @Author: wanglei
 * @File: logger
 * @Version: 1.0.0
 * @Description: logrus封装, 按天切分日志文件
 * @Date: 2023/08/22 09:40
 */

// 日志配置
type Settings struct {
	Dir        string
	Level      string
	MaxAgeDays int
}

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	// Setup之前输出到标准错误
	logger.SetOutput(os.Stderr)
}

// Setup 按配置设置日志级别和输出目录
func Setup(settings *Settings) error {
	level, err := logrus.ParseLevel(settings.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	dir := settings.Dir
	if !filepath.IsAbs(dir) {
		root, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = filepath.Join(root, dir)
	}
	maxAge := settings.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}
	writer, err := rotatelogs.New(
		filepath.Join(dir, "%Y%m%d.log"),
		// 每24小时切分一次
		rotatelogs.WithRotationTime(24*time.Hour),
		// WithMaxAge和WithRotationCount只能设置一个
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
	)
	if err != nil {
		return err
	}
	logger.SetOutput(writer)
	return nil
}

func entry() *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	})
}

func Debugf(format string, args ...interface{}) {
	entry().Debugf(format, args...)
}

func Info(args ...interface{}) {
	entry().Info(args...)
}

func Infof(format string, args ...interface{}) {
	entry().Infof(format, args...)
}

func Warn(args ...interface{}) {
	entry().Warn(args...)
}

func Fatal(args ...interface{}) {
	entry().Fatal(args...)
}

// 跳过setFileLine, entry和导出的日志函数
func setFileLine() (filePath string) {
	_, file, line, ok := runtime.Caller(3)
	abs, _ := filepath.Abs(file)
	root, _ := os.Getwd()
	path := strings.Replace(strings.Replace(abs, root, "", 2), "\\", "/", -1)
	if ok {
		filePath = fmt.Sprintf("%s:%d", path, line)
	} else {
		filePath = "file path not found"
	}
	return
}

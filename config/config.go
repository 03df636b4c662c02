package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/**
 * @Author: wanglei
 * @File: config
 * @Version: 1.0.0
 * @Description: 演示程序的配置
 * @Date: 2023/08/22 14:10
 */

// 全局配置参数
type DemoProperties struct {
	// 依次push的整数个数, 0..Count-1
	Count int `cfg:"count"`
	// 额外插入的值和位置, InsertIndex<0表示追加到末尾
	InsertValue int `cfg:"insert-value"`
	InsertIndex int `cfg:"insert-index"`

	LogLevel      string `cfg:"log-level"`
	LogDir        string `cfg:"log-dir"`
	LogMaxAgeDays int    `cfg:"log-max-age-days"`
}

var Properties *DemoProperties

func init() {
	Properties = Defaults()
}

func Defaults() *DemoProperties {
	return &DemoProperties{
		Count:         10,
		InsertValue:   1337,
		InsertIndex:   -1,
		LogLevel:      "info",
		LogDir:        "logs",
		LogMaxAgeDays: 7,
	}
}

// 未出现在src中的字段保留默认值
func parse(src io.Reader) (*DemoProperties, error) {
	config := Defaults()

	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}

		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intValue)
		}
	}
	if config.Count < 0 {
		return nil, errors.Errorf("config count must not be negative: %d", config.Count)
	}
	return config, nil
}

func SetupConfig(configFilename string) error {
	file, err := os.Open(configFilename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer file.Close()
	p, err := parse(file)
	if err != nil {
		return err
	}
	Properties = p
	return nil
}

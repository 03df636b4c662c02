package main

import (
	"fmt"
	"gmr/go-linkedlist/config"
	"gmr/go-linkedlist/datastruct/list"
	"gmr/go-linkedlist/lib/logger"
	"os"

	"github.com/pkg/errors"
)

var banner = `
 _ _       _            _ _ _     _
| (_)_ __ | | _____  __| | (_)___| |_
| | | '_ \| |/ / _ \/ _' | | / __| __|
| | | | | |   <  __/ (_| | | \__ \ |_
|_|_|_| |_|_|\_\___|\__,_|_|_|___/\__|
`

func main() {
	fmt.Print(banner)

	configFile := os.Getenv("LINKEDLIST_CONFIG")
	if configFile == "" && fileExist("linkedlist.conf") {
		configFile = "linkedlist.conf"
	}
	if configFile != "" {
		if err := config.SetupConfig(configFile); err != nil {
			logger.Fatal(err)
		}
	}
	p := config.Properties
	if err := logger.Setup(&logger.Settings{
		Dir:        p.LogDir,
		Level:      p.LogLevel,
		MaxAgeDays: p.LogMaxAgeDays,
	}); err != nil {
		logger.Fatal(err)
	}
	logger.Info("linked list demo start...")

	freed, err := run(p)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("linked list deleted, %d values disposed", freed)
}

func run(p *config.DemoProperties) (freed int, err error) {
	l := list.MakeLinkedList(func(val interface{}) {
		freed++
		logger.Debugf("dispose %d", *(val.(*int)))
	})

	for i := 0; i < p.Count; i++ {
		v := i
		if err := l.Push(&v); err != nil {
			return 0, errors.Wrapf(err, "push %d", i)
		}
	}

	index := p.InsertIndex
	if index < 0 {
		index = l.Size()
	}
	insert := p.InsertValue
	if err := l.Insert(&insert, index); err != nil {
		// 越界插入只记录, 不中断演示
		logger.Warn(errors.Wrapf(err, "insert %d at %d", insert, index))
	}

	fmt.Printf("Linked list size: %d\n", l.Size())

	if err := l.ForEach(func(val interface{}) {
		fmt.Println(*(val.(*int)))
	}); err != nil {
		return 0, errors.Wrap(err, "for each")
	}

	if err := l.Delete(); err != nil {
		return 0, errors.Wrap(err, "delete")
	}
	return freed, nil
}

func fileExist(fileName string) bool {
	info, err := os.Stat(fileName)
	return err == nil && !info.IsDir()
}

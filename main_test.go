package main

import (
	"gmr/go-linkedlist/config"
	"testing"
)

func TestRun(t *testing.T) {
	freed, err := run(config.Defaults())
	if err != nil {
		t.Error(err)
		return
	}
	if freed != 11 {
		t.Errorf("expect 11 disposed values, actual: %d", freed)
	}
}

func TestRunOutOfBoundsInsert(t *testing.T) {
	p := config.Defaults()
	p.Count = 3
	p.InsertIndex = 9
	freed, err := run(p)
	if err != nil {
		t.Error(err)
		return
	}
	if freed != 3 {
		t.Errorf("expect 3 disposed values, actual: %d", freed)
	}
}

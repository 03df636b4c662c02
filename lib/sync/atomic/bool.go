package atomic

import "sync/atomic"

/**
 * @Author: wanglei
 * @File: bool.go
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/10 19:59
 */

// 原子操作的boolean值, 零值为false
type Boolean uint32

func (b *Boolean) Get() bool {
	return atomic.LoadUint32((*uint32)(b)) != 0
}

func (b *Boolean) Set(v bool) {
	atomic.StoreUint32((*uint32)(b), toUint32(v))
}

// 当前值等于old时替换为v, 返回是否替换成功
func (b *Boolean) CompareAndSwap(old, v bool) bool {
	return atomic.CompareAndSwapUint32((*uint32)(b), toUint32(old), toUint32(v))
}

func toUint32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

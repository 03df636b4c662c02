package list

/**
 * @Author: wanglei
 * @File: list
 * @Version: 1.0.0
 * @Description: 单向链表接口定义
 * @Date: 2023/08/21 10:02
 */

// 值离开链表时用于释放资源, 可以为nil
type Disposer func(val interface{})

// 按从头到尾的顺序消费每个元素
type Consumer func(val interface{})

// 判断val是否为期望的值
type Expected func(val interface{}) bool

// List 非线程安全, 并发修改需要调用方自行加锁
type List interface {
	Size() int
	Get(index int) (val interface{}, err error)
	Push(val interface{}) error
	Insert(val interface{}, index int) error
	Remove(index int) error
	Pop() (val interface{}, ok bool)
	ForEach(consumer Consumer) error
	Contains(expected Expected) bool
	Values() []interface{}
	Delete() error
}

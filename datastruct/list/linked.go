package list

import (
	"reflect"

	"gmr/go-linkedlist/lib/sync/atomic"
)

/**
 * @Author: wanglei
 * @File: linked
 * @Version: 1.0.0
 * @Description: 单向链表实现
 * @Date: 2023/08/21 11:30
 */

type node struct {
	val  interface{}
	next *node
}

// LinkedList 单向链表, 只保存头节点
// 注册了disposer时, Remove和Delete会对离开链表的值调用disposer, Pop不会
type LinkedList struct {
	head     *node
	disposer Disposer
	deleted  atomic.Boolean
}

// MakeLinkedList disposer为nil时值的所有权始终归调用方
func MakeLinkedList(disposer Disposer) *LinkedList {
	return &LinkedList{disposer: disposer}
}

func newNode(val interface{}, next *node) (*node, error) {
	if isNil(val) {
		return nil, ErrNodeCreateFailed
	}
	return &node{val: val, next: next}, nil
}

// 类型化的nil指针同样视为空值
func isNil(val interface{}) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func (l *LinkedList) valid() bool {
	return l != nil && !l.deleted.Get()
}

// 返回index位置的节点, 调用方保证index在范围内
func (l *LinkedList) find(index int) *node {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Size O(n), 无效链表返回0
func (l *LinkedList) Size() int {
	if !l.valid() {
		return 0
	}
	size := 0
	for n := l.head; n != nil; n = n.next {
		size++
	}
	return size
}

func (l *LinkedList) Get(index int) (val interface{}, err error) {
	if !l.valid() {
		return nil, ErrInvalidArgument
	}
	size := l.Size()
	if index < 0 || index >= size {
		return nil, outOfBounds(index, size)
	}
	return l.find(index).val, nil
}

func (l *LinkedList) Push(val interface{}) error {
	if !l.valid() || isNil(val) {
		return ErrInvalidArgument
	}
	n, err := newNode(val, l.head)
	if err != nil {
		return err
	}
	l.head = n
	return nil
}

// Insert 插入后val位于index, index等于Size()时追加到末尾
func (l *LinkedList) Insert(val interface{}, index int) error {
	if !l.valid() || isNil(val) {
		return ErrInvalidArgument
	}
	size := l.Size()
	if index < 0 || index > size {
		return outOfBounds(index, size)
	}
	if index == 0 {
		return l.Push(val)
	}
	prev := l.find(index - 1)
	n, err := newNode(val, prev.next)
	if err != nil {
		return err
	}
	prev.next = n
	return nil
}

// Remove 注册了disposer时值会被释放, 调用方之后不能再访问它
func (l *LinkedList) Remove(index int) error {
	if !l.valid() {
		return ErrInvalidArgument
	}
	size := l.Size()
	if index < 0 || index >= size {
		return outOfBounds(index, size)
	}
	var removed *node
	if index == 0 {
		removed = l.head
		l.head = removed.next
	} else {
		prev := l.find(index - 1)
		removed = prev.next
		prev.next = removed.next
	}
	removed.next = nil
	l.dispose(removed.val)
	return nil
}

// Pop 取出头部的值, 所有权交还调用方, 不会调用disposer
func (l *LinkedList) Pop() (val interface{}, ok bool) {
	if !l.valid() || l.head == nil {
		return nil, false
	}
	return l.popHead(), true
}

func (l *LinkedList) popHead() interface{} {
	n := l.head
	l.head = n.next
	n.next = nil
	return n.val
}

func (l *LinkedList) dispose(val interface{}) {
	if l.disposer != nil && !isNil(val) {
		l.disposer(val)
	}
}

// ForEach 遍历期间修改链表的行为未定义
func (l *LinkedList) ForEach(consumer Consumer) error {
	if !l.valid() || consumer == nil {
		return ErrInvalidArgument
	}
	for n := l.head; n != nil; n = n.next {
		if isNil(n.val) {
			continue
		}
		consumer(n.val)
	}
	return nil
}

func (l *LinkedList) Contains(expected Expected) bool {
	if !l.valid() || expected == nil {
		return false
	}
	for n := l.head; n != nil; n = n.next {
		if expected(n.val) {
			return true
		}
	}
	return false
}

// Values 从头到尾的快照
func (l *LinkedList) Values() []interface{} {
	if !l.valid() {
		return nil
	}
	values := make([]interface{}, 0, l.Size())
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.val)
	}
	return values
}

// Delete 按下标顺序释放所有值, 之后链表不可再使用
func (l *LinkedList) Delete() error {
	if l == nil || !l.deleted.CompareAndSwap(false, true) {
		return ErrInvalidArgument
	}
	for l.head != nil {
		l.dispose(l.popHead())
	}
	return nil
}

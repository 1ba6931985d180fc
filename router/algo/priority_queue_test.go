package algo_test

import (
	"container/heap"
	"testing"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/stretchr/testify/assert"
)

func TestPriorityQueue(t *testing.T) {
	pq := make(algo.PriorityQueue, 0)
	heap.Push(&pq, &algo.Item{Value: 4, Priority: 85})
	heap.Push(&pq, &algo.Item{Value: 2, Priority: 7})
	heap.Push(&pq, &algo.Item{Value: 1, Priority: 48})
	heap.Push(&pq, &algo.Item{Value: 3, Priority: 8})

	item := heap.Pop(&pq).(*algo.Item)
	assert.Equal(t, 2, item.Value)
	assert.Equal(t, 7.0, item.Priority)
	assert.Equal(t, -1, item.Index)
	item = heap.Pop(&pq).(*algo.Item)
	assert.Equal(t, 3, item.Value)
	assert.Equal(t, 2, pq.Len())
}

func TestPriorityQueueChangePriority(t *testing.T) {
	pq := make(algo.PriorityQueue, 0)
	pq.Push(&algo.Item{Value: 4, Priority: 4})
	pq.Push(&algo.Item{Value: 2, Priority: 2})
	pq.Push(&algo.Item{Value: 1, Priority: 1})
	pq.Push(&algo.Item{Value: 3, Priority: 3})

	// 建堆
	heap.Init(&pq)

	// 将Value==3的优先级改为0
	for _, item := range pq {
		if item.Value == 3 {
			item.Priority = 0
			heap.Fix(&pq, item.Index)
		}
	}

	expected := []int{3, 1, 2, 4}
	for _, v := range expected {
		item := heap.Pop(&pq).(*algo.Item)
		assert.Equal(t, v, item.Value)
	}
	assert.Equal(t, 0, pq.Len())
}

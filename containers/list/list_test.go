package list

import "testing"

func checkListPointers[T any](t *testing.T, l *List[T], es []*Element[T]) {
	t.Helper()
	if n := l.Len(); n != len(es) {
		t.Errorf("l.Len() = %d, want %d", n, len(es))
		return
	}
	i := 0
	for e := l.Front(); e != nil; e = e.Next() {
		if e != es[i] {
			t.Errorf("element %d is %p, want %p", i, e, es[i])
		}
		i++
	}
}

func TestList(t *testing.T) {
	l := New[int]()
	checkListPointers(t, l, []*Element[int]{})

	// Single element list
	e := l.PushFront(1)
	checkListPointers(t, l, []*Element[int]{e})
	l.Remove(e)
	checkListPointers(t, l, []*Element[int]{})

	// Bigger list
	e2 := l.PushFront(2)
	e1 := l.PushFront(1)
	e3 := l.PushBack(3)
	e4 := l.PushBack(4)
	checkListPointers(t, l, []*Element[int]{e1, e2, e3, e4})

	l.Remove(e2)
	checkListPointers(t, l, []*Element[int]{e1, e3, e4})

	l.MoveToFront(e3) // move from middle
	checkListPointers(t, l, []*Element[int]{e3, e1, e4})

	l.MoveToFront(e1)
	l.MoveToBack(e3) // move from middle
	checkListPointers(t, l, []*Element[int]{e1, e4, e3})

	l.MoveToFront(e3) // move from back
	checkListPointers(t, l, []*Element[int]{e3, e1, e4})
	l.MoveToFront(e3) // should be no-op
	checkListPointers(t, l, []*Element[int]{e3, e1, e4})

	// Check standard iteration.
	sum := 0
	for e := l.Front(); e != nil; e = e.Next() {
		sum += e.Value
	}
	if sum != 8 {
		t.Errorf("sum over l = %d, want 8", sum)
	}

	// Clear all elements by iterating
	var next *Element[int]
	for e := l.Front(); e != nil; e = next {
		next = e.Next()
		l.Remove(e)
	}
	checkListPointers(t, l, []*Element[int]{})
}

func TestListZeroValue(t *testing.T) {
	var l List[string]
	l.PushBack("a")
	l.PushBack("b")
	if l.Len() != 2 {
		t.Errorf("l.Len() = %d, want 2", l.Len())
	}
	if l.Front().Value != "a" || l.Back().Value != "b" {
		t.Errorf("unexpected front/back: %v %v", l.Front().Value, l.Back().Value)
	}
}

func TestListReverseIteration(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.PushBack(i)
	}
	want := 3
	for e := l.Back(); e != nil; e = e.Prev() {
		if e.Value != want {
			t.Errorf("Got %v expected %v", e.Value, want)
		}
		want--
	}
}

package list

// Copy returns a new list with the elements of source.
func Copy[T Identified](source *List[T]) (l *List[T]) {
	l = New[T]()
	l.AddAll(source)
	return
}

// Filtered returns a new list with the elements of source for which pred holds, in source order.
func Filtered[T Identified](source *List[T], pred func(T) bool) (l *List[T]) {
	l = New[T]()
	for _, element := range source.elements {
		if pred(element) {
			l.Add(element)
		}
	}
	return
}

// Intersection returns a new list with the elements of a whose ids are also in b, in a's order.
func Intersection[T Identified](a *List[T], b *List[T]) (l *List[T]) {
	l = New[T]()
	for _, element := range a.elements {
		id := element.ID()
		if b.Has(id) && !l.Has(id) {
			l.Add(element)
		}
	}
	return
}

// Union returns a new list with the elements of a, followed by the elements of b whose ids are
// not in a, in b's order.
func Union[T Identified](a *List[T], b *List[T]) (l *List[T]) {
	l = New[T]()
	for _, element := range a.elements {
		if !l.Has(element.ID()) {
			l.Add(element)
		}
	}
	for _, element := range b.elements {
		if !l.Has(element.ID()) {
			l.Add(element)
		}
	}
	return
}

// Subtract returns a new list with the elements of a whose ids are not in b, in a's order.
func Subtract[T Identified](a *List[T], b *List[T]) *List[T] {
	return Filtered(a, func(element T) bool { return !b.Has(element.ID()) })
}

package store

// Index mantém a lista na ordem recebida e um mapa id -> posição.
// Registros sem id ficam na lista mas não entram no mapa.
type Index[T interface{ Key() string }] struct {
	items []T
	byID  map[string]int
}

func NewIndex[T interface{ Key() string }](items []T) Index[T] {
	idx := Index[T]{items: items, byID: make(map[string]int, len(items))}
	for i, it := range items {
		if k := it.Key(); k != "" {
			idx.byID[k] = i
		}
	}
	return idx
}

func (x Index[T]) Get(id string) (T, bool) {
	i, ok := x.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return x.items[i], true
}

func (x Index[T]) Items() []T { return x.items }
func (x Index[T]) Len() int   { return len(x.items) }

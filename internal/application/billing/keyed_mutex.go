package billing

import "sync"

// KeyedMutex serializa mutaciones por clave de entidad (cliente).
// El record store es el único recurso mutable compartido: leer el límite y
// escribir el nuevo en llamadas concurrentes sin exclusión produce lost
// updates, así que toda operación read-modify-write toma el lock de su cliente.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex construye el lock por clave. Se comparte entre los casos de
// uso que mutan la misma entidad (crédito y ciclo de vida del cliente).
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock bloquea la clave y devuelve la función para liberarla.
// Las entradas sin titulares se eliminan del map para no crecer sin límite.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	l := k.locks[key]
	if l == nil {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

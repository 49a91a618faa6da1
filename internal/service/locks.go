package service

import (
	"sync"

	"github.com/google/uuid"
)

// doctorLocks сериализует мутации записей по одному врачу: проверка
// конфликтов и вставка обязаны быть атомарными, иначе два конкурентных
// бронирования могут обе пройти проверку и нарушить инвариант
// непересекающихся интервалов. Читающие операции блокировку не берут.
type doctorLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newDoctorLocks() *doctorLocks {
	return &doctorLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// forDoctor возвращает мьютекс врача, создавая его при первом обращении.
// Мьютексы не освобождаются: врачей мало, утечка не накапливается.
func (l *doctorLocks) forDoctor(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

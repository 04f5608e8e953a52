package algorithms

// GenreLookup is the bidirectional genre id <-> name collaborator.
// IDs that are not present in the mapping are skipped by the core,
// never treated as an error.
type GenreLookup interface {
	GenreName(id int64) (string, bool)
	GenreID(name string) (int64, bool)
}

// StaticGenreLookup - неизменяемая таблица жанров в памяти.
// Сама таблица (18 жанров TMDB) живет в сидах миграции, а не здесь:
// для ядра это конфигурация, которую внедряют снаружи.
type StaticGenreLookup struct {
	byID   map[int64]string
	byName map[string]int64
}

func NewStaticGenreLookup(byID map[int64]string) *StaticGenreLookup {
	l := &StaticGenreLookup{
		byID:   make(map[int64]string, len(byID)),
		byName: make(map[string]int64, len(byID)),
	}
	for id, name := range byID {
		l.byID[id] = name
		l.byName[name] = id
	}
	return l
}

func (l *StaticGenreLookup) GenreName(id int64) (string, bool) {
	name, ok := l.byID[id]
	return name, ok
}

func (l *StaticGenreLookup) GenreID(name string) (int64, bool) {
	id, ok := l.byName[name]
	return id, ok
}

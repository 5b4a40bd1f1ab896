package entity

// Nicks maps the string nicks of an enumeration to their integer codes.
type Nicks map[string]int

// Nick returns the nick for the given code, if any.
func (nicks Nicks) Nick(code int) (nick string, ok bool) {
	for n, c := range nicks {
		if c == code {
			nick = n
			ok = true
			return
		}
	}
	return
}

// Enum returns the code for the first value of key. The result is not ok if key has no value.
// A value that is not one of the nicks is a contract violation and panics.
func (e *Entity) Enum(key string, nicks Nicks) (code int, ok bool) {
	value, present := e.Get(key)
	if !present {
		return
	}
	code, ok = nicks[value]
	if !ok {
		panic("entity.unknownNick: " + key + "=" + value)
	}
	return
}

// EnumDefault returns the code for the first value of key, or def if key has no value or
// its value is not one of the nicks.
func (e *Entity) EnumDefault(key string, nicks Nicks, def int) int {
	value, present := e.Get(key)
	if !present {
		return def
	}
	code, ok := nicks[value]
	if !ok {
		return def
	}
	return code
}

// SetEnum sets key to the nick of code. An unknown code panics.
func (e *Entity) SetEnum(key string, nicks Nicks, code int) {
	nick, ok := nicks.Nick(code)
	if !ok {
		panic("entity.unknownCode: " + key)
	}
	e.Set(key, nick)
}

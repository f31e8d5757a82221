// core/rotor/tables.go
package rotor

// Historical wheel wirings of the Wehrmacht/Kriegsmarine Enigma M3.
// These constants define the cipher output bit-for-bit; never re-derive
// or "fix" them. Wiring index = entry contact, value = exit letter.
// Rotors VI-VIII carry two turnover notches (Z and M).
var rotorTable = []struct {
	name    string
	wiring  string
	notches string
}{
	{"I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"},
	{"II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"},
	{"III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"},
	{"IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"},
	{"V", "VZBRGITYUPSDNHLXAWMJQOFECK", "Z"},
	{"VI", "JPGVOUMFYQBENHZRDKASXLICTW", "ZM"},
	{"VII", "NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM"},
	{"VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM"},
}

// Reflectors are involutive and fixed to the chassis: no position, no ring.
// B-Thin and C-Thin are the narrow M4 wheels.
var reflectorTable = []struct {
	name   string
	wiring string
}{
	{"A", "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{"B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{"C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	{"B-Thin", "ENKQAUYWJICOPBLMDXZVFTHRGS"},
	{"C-Thin", "RDOBJNTKVEHMLFCWZAXGYIPSUQ"},
}

package sector

// systemNames returns the pool of star system names, consumed as cells
// and the sector itself are named.
func systemNames() []string {
	return []string{
		"Bootus", "Bootset", "Albus", "Akyor", "Choron", "Kratus", "Abeles",
		"Aralor", "Kenji", "Jeren", "Gehen", "Multis", "X8532", "X532",
		"Wrandor", "Les-Lase", "Wender", "Minimus", "Drator", "Huru", "Klam",
		"Meled", "Tuts", "Qudro", "Merder", "Joo", "Zood", "Caestus", "Der",
		"Eol", "Iolus",
	}
}

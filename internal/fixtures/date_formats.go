package fixtures

// SourceDateFormats maps a source (location/device) name to the datetime
// layout its exports use. The layout listed here is tried first for a
// matching file; the general fallback layouts in the ingest package cover
// the rest.
var SourceDateFormats = map[string]string{
	"Benetone Mohalab BM": "2-Jan-06 3:04:05 PM",
	"Benetone Mohalab Vm": "2-Jan-06 3:04:05 PM",
	"Benetone Mohalab":    "2-Jan-06 3:04:05 PM",
	"BM D&H Dagher":       "1/2/2006 3:04:05 PM",
	"Celio Marina BM":     "1/2/2006 3:04:05 PM",
	"Celio Marina VM":     "1/2/2006 3:04:05 PM",
	"Celio Marina":        "1/2/2006 3:04:05 PM",
	"Celio Warehouse":     "1/2/2006 3:04:05 PM",
	"D&H Dagher Vm":       "1/2/2006 3:04:05 PM",
	"D&H HO":              "1/2/2006 3:04:05 PM",
	"D&H Warehouse":       "1/2/2006 3:04:05 PM",
	"Designer Avenue":     "1/2/2006 3:04:05 PM",
	"Etam 360":            "1/2/2006 3:04:05 PM",
	"Etam 360 Vm":         "2/1/2006 3:04:05 PM",
	"Etam Avenue":         "1/2/2006 3:04:05 PM",
	"Etam Gatemall":       "1/2/2006 3:04:05 PM",
	"Etam Marina":         "1/2/2006 3:04:05 PM",
	"Etam Warehouse":      "1/2/2006 3:04:05 PM",
	"FD Al Bahar BM":      "1/2/2006 3:04:05 PM",
	"FD Al Bahar Vm":      "1/2/2006 3:04:05 PM",
	"FD Boulevard Bm":     "2/1/06 3:04:05 PM",
	"FD Boulevard Vm":     "2/1/06 3:04:05 PM",
	"BM FD Boulevard":     "2/1/06 3:04:05 PM",
	"Bm Ws sharq":         "1/2/2006 3:04:05 PM",
	"Head OFfice VM":      "2/1/2006 3:04:05 PM",
	"Lipsy Mohalab":       "2-Jan-06 3:04:05 PM",
	"Spring Field":        "1/2/2006 3:04:05 PM",
	"TT Mohalab":          "2-Jan-06 3:04:05 PM",
	"Ws Koutmall":         "1/2/2006 3:04:05 PM",
	"Ws 360 Vm":           "2-Jan-06 3:04:05 PM",
	"Ws 360":              "1/2/2006 3:04:05 PM",
	"Ws Avenue":           "1/2/2006 3:04:05 PM",
	"Ws Gatemall":         "1/2/2006 3:04:05 PM",
	"Ws Mohalab":          "2-Jan-06 3:04:05 PM",
	"Ws Olympia":          "1/2/2006 3:04:05 PM",
	"Ws Sharq Vm":         "1/2/2006 3:04:05 PM",
	"Ws Sharq":            "1/2/2006 3:04:05 PM",
	"Yammay Avenue":       "1/2/2006 3:04:05 PM",
	"Yammay Al koutmall":  "1/2/2006 3:04:05 PM",

	"Doha Store":                    "1/2/2006 3:04:05 PM",
	"Hawally Warehouse ( Hadabah )": "1/2/2006 3:04:05 PM",
	"Doha Store Warehouse":          "2/1/2006 3:04:05 PM",
	"Hadaba HO":                     "1/2/2006 3:04:05 PM",
	"Lighting Plus":                 "1/2/2006 3:04:05 PM",
	"S14":                           "1/2/2006 3:04:05 PM",
	"S16":                           "1/2/2006 3:04:05 PM",
	"S17":                           "1/2/2006 3:04:05 PM",
	"S20":                           "1/2/2006 3:04:05 PM",
	"S21":                           "1/2/2006 3:04:05 PM",
	"S33":                           "1/2/2006 3:04:05 PM",
	"S39":                           "1/2/2006 3:04:05 PM",
	"S40":                           "1/2/2006 3:04:05 PM",
	"S41":                           "1/2/2006 3:04:05 PM",
	"S42":                           "1/2/2006 3:04:05 PM",
	"Al hadabah Drivers":            "1/2/2006 3:04:05 PM",

	"2nd cup Warehouse":      "1/2/2006 3:04:05 PM",
	"Admin Science":          "1/2/2006 3:04:05 PM",
	"Badriya Hospital":       "1/2/2006 3:04:05 PM",
	"Boys PAAET":             "1/2/2006 3:04:05 PM",
	"Bustan":                 "1/2/2006 3:04:05 PM",
	"College of Science":     "1/2/2006 3:04:05 PM",
	"Dar al Shifa Clinic":    "1/2/2006 3:04:05 PM",
	"Dar al Shifa":           "1/2/2006 3:04:05 PM",
	"Edu Boys":               "1/2/2006 3:04:05 PM",
	"Edu Girls 2":            "1/2/2006 3:04:05 PM",
	"Edu Girls":              "1/2/2006 3:04:05 PM",
	"Farwaniya Hospital":     "1/2/2006 3:04:05 PM",
	"Homz Mall":              "1/2/2006 3:04:05 PM",
	"IC Salmiya":             "1/2/2006 3:04:05 PM",
	"International Hospital": "1/2/2006 3:04:05 PM",
	"Jaber Hospital":         "1/2/2006 3:04:05 PM",
	"Jahar Hospital":         "1/2/2006 3:04:05 PM",
	"Life Science":           "1/2/2006 3:04:05 PM",
	"Makki Juma":             "1/2/2006 3:04:05 PM",
	"Marina Mall":            "1/2/2006 3:04:05 PM",
	"Mohalab":                "1/2/2006 3:04:05 PM",
	"MOI":                    "1/2/2006 3:04:05 PM",
	"Nursing Boys":           "1/2/2006 3:04:05 PM",
	"Nursing Girls":          "1/2/2006 3:04:05 PM",
	"PAAET Admin":            "1/2/2006 3:04:05 PM",
	"Scup Vm":                "1/2/2006 3:04:05 PM",
	"BEAUTY AND TRAVEL":      "1/2/2006 3:04:05 PM",
	"CIT":                    "1/2/2006 3:04:05 PM",
	"Edu Boys PAAET":         "1/2/2006 3:04:05 PM",
	"Khaitan":                "1/2/2006 3:04:05 PM",
	"Capital Governorate":    "1/2/2006 3:04:05 PM",
	"Police Force":           "1/2/2006 3:04:05 PM",
	"Adan Hospital":          "1/2/2006 3:04:05 PM",

	"BEBE Olympia":       "1/2/2006 3:04:05 PM",
	"BYL Mohalab":        "2-Jan-06 3:04:05 PM",
	"BYL 360":            "1/2/2006 3:04:05 PM",
	"BYL Avenue":         "1/2/2006 3:04:05 PM",
	"BYL Koutmall":       "1/2/2006 3:04:05 PM",
	"FD Al Bahar":        "1/2/2006 3:04:05 PM",
	"FD Boulevard":       "2/1/06 3:04:05 PM",
	"FD Olympia":         "1/2/2006 3:04:05 PM",
	"Hunkemoller":        "1/2/2006 3:04:05 PM",
	"Hunkemoller Avenue": "1/2/2006 3:04:05 PM",
	"LVER 360":           "1/2/2006 3:04:05 PM",
	"LVER Avenue":        "1/2/2006 3:04:05 PM",
	"LVER Koutmall":      "1/2/2006 3:04:05 PM",
	"LVER Gatemall":      "1/2/2006 3:04:05 PM",
	"LVER Olympia":       "1/2/2006 3:04:05 PM",
	"LVER Al Raya":       "1/2/2006 3:04:05 PM",
	"LVER Mohalab":       "2-Jan-06 3:04:05 PM",
	"Menbur Avenue":      "1/2/2006 3:04:05 PM",
	"DCO HO":             "1/2/2006 3:04:05 PM",
}

package fixtures

// Some devices export their sheets under a numeric name in the form CLLL:
// one company digit followed by the location code. The maps below resolve
// those back to real location names.

// CompanyCodes maps the leading filename digit to a company name.
var CompanyCodes = map[string]string{
	"1": "D&H",
	"2": "Al-hadabah times",
	"3": "Second Cup",
	"4": "D&co",
}

// LocationCodes maps company name to location-code table.
var LocationCodes = map[string]map[string]string{
	"D&H": {
		"01": "Benetone Mohalab BM",
		"02": "Benetone Mohalab Vm",
		"03": "Benetone Mohalab",
		"04": "BM D&H Dagher",
		"05": "Celio Marina BM",
		"06": "Celio Marina VM",
		"07": "Celio Marina",
		"08": "Celio Warehouse",
		"09": "D&H Dagher Vm",
		"10": "D&H HO",
		"11": "D&H Warehouse",
		"12": "Designer Avenue",
		"13": "Etam 360",
		"14": "Etam 360 Vm",
		"15": "Etam Avenue",
		"16": "Etam Gatemall",
		"17": "Etam Marina",
		"18": "Etam Warehouse",
		"19": "FD Al Bahar BM",
		"20": "FD Al Bahar Vm",
		"21": "FD Boulevard Bm",
		"22": "FD Boulevard Vm",
		"23": "Head OFfice VM",
		"24": "Lipsy Mohalab",
		"25": "Spring Field",
		"26": "TT Mohalab",
		"27": "Ws Koutmall",
		"28": "Ws 360 Vm",
		"29": "Ws 360",
		"30": "Ws Avenue",
		"31": "Ws Gatemall",
		"32": "Ws Mohalab",
		"33": "Ws Olympia",
		"34": "Ws Sharq Vm",
		"35": "Ws Sharq",
		"36": "Yammay Avenue",
		"37": "BM FD Boulevard",
		"38": "Bm Ws sharq",
		"39": "DCO HO",
		"40": "Yammay Al koutmall",
	},
	"Al-hadabah times": {
		"01": "Doha Store",
		"02": "Hawally Warehouse ( Hadabah )",
		"03": "Doha Store Warehouse",
		"04": "Hadaba HO",
		"05": "Lighting Plus",
		"06": "S14",
		"07": "S16",
		"08": "S17",
		"09": "S20",
		"10": "S21",
		"11": "S33",
		"12": "S39",
		"13": "S40",
		"14": "S41",
		"15": "S42",
		"16": "Al hadabah Drivers",
	},
	"Second Cup": {
		"01": "2nd cup Warehouse",
		"02": "Admin Science",
		"03": "Badriya Hospital",
		"04": "Boys PAAET",
		"05": "Bustan",
		"06": "College of Science",
		"07": "Dar al Shifa Clinic",
		"08": "Dar al Shifa",
		"09": "Edu Boys",
		"10": "Edu Girls 2",
		"11": "Edu Girls",
		"12": "Farwaniya Hospital",
		"13": "Homz Mall",
		"14": "IC Salmiya",
		"15": "International Hospital",
		"16": "Jaber Hospital",
		"17": "Jahar Hospital",
		"18": "Life Science",
		"19": "Makki Juma",
		"20": "Marina Mall",
		"21": "Mohalab",
		"22": "MOI",
		"23": "Nursing Boys",
		"24": "Nursing Girls",
		"25": "PAAET Admin",
		"26": "Scup Vm",
		"27": "BEAUTY AND TRAVEL",
		"28": "CIT",
		"29": "Edu Boys PAAET",
		"30": "Khaitan",
		"31": "Capital Governorate",
		"32": "Police Force",
		"33": "Adan Hospital",
	},
	"D&co": {
		"01": "BEBE Olympia",
		"02": "BYL Mohalab",
		"03": "BYL 360",
		"04": "BYL Avenue",
		"05": "BYL Koutmall",
		"06": "FD Al Bahar",
		"07": "FD Boulevard",
		"08": "FD Olympia",
		"09": "Hunkemoller",
		"10": "LVER 360",
		"11": "LVER Avenue",
		"12": "LVER Koutmall",
		"13": "LVER Gatemall",
		"14": "LVER Olympia",
		"15": "LVER Al Raya",
		"16": "LVER Mohalab",
		"17": "Menbur Avenue",
		"18": "DCO HO",
		"19": "Hunkemoller Avenue",
	},
}

// Package registry holds static reference data used during form projection.
package registry

// naicCodes maps carrier legal names to their NAIC registration codes.
// Maintained by hand from carrier filings; names must match the extraction
// output exactly.
var naicCodes = map[string]string{
	"Allstate Fire and Casualty Insurance Company":       "29688",
	"Allstate Indemnity Company":                         "19240",
	"American Family Insurance Company":                  "19275",
	"Amguard Insurance Company":                          "42390",
	"Auto-Owners Insurance Company":                      "18988",
	"Berkley Insurance Company":                          "32603",
	"Berkshire Hathaway Homestate Insurance Company":     "20044",
	"Century Surety Company":                             "36951",
	"Church Mutual Insurance Company":                    "18767",
	"Cincinnati Insurance Company":                       "10677",
	"Continental Casualty Company":                       "20443",
	"Employers Mutual Casualty Company":                  "21415",
	"Erie Insurance Exchange":                            "26263",
	"Frankenmuth Mutual Insurance Company":               "13986",
	"General Casualty Company of Wisconsin":              "24414",
	"Great American Insurance Company":                   "16691",
	"Grinnell Mutual Reinsurance Company":                "23973",
	"Hanover Insurance Company":                          "22292",
	"Hartford Fire Insurance Company":                    "19682",
	"Insurance Company of the West":                      "27847",
	"Indiana Lumbermens Mutual Insurance Company":        "14265",
	"Liberty Mutual Fire Insurance Company":              "23035",
	"Liberty Mutual Insurance Company":                   "23043",
	"Markel American Insurance Company":                  "28932",
	"Mesa Underwriters Specialty Insurance Company":      "36838",
	"Merchants Bonding Company":                          "14494",
	"Nationwide Mutual Fire Insurance Company":           "23779",
	"Nationwide Mutual Insurance Company":                "23787",
	"Ohio Casualty Insurance Company":                    "24074",
	"Pennsylvania Lumbermens Mutual Insurance Company":   "14974",
	"Philadelphia Indemnity Insurance Company":           "18058",
	"Pinnacol Assurance":                                 "41190",
	"Progressive Casualty Insurance Company":             "24260",
	"Selective Insurance Company of America":             "12572",
	"Sentry Insurance A Mutual Company":                  "24988",
	"Society Insurance":                                  "14117",
	"State Auto Mutual Automobile Insurance Company":     "25127",
	"State Farm Fire and Casualty Company":               "25143",
	"State Farm General Insurance Company":               "25151",
	"State Farm Mutual Automobile Insurance Company":     "25178",
	"The Travelers Indemnity Company":                    "25658",
	"Travelers Casualty and Surety Company":              "19046",
	"Travelers Indemnity Company of America":             "25666",
	"USAA Casualty Insurance Company":                    "25968",
	"United States Liability Insurance Company":          "25895",
	"West Bend Mutual Insurance Company":                 "15350",
	"Westfield Insurance Company":                        "24112",
	"Zurich American Insurance Company":                  "16535",
	"Accelerant Specialty Insurance Company":             "16890",
	"Acceptance Indemnity Insurance Company":             "20010",
	"Admiral Insurance Company":                          "24856",
	"Allied World Insurance Company":                     "22730",
	"Arch Insurance Company":                             "11150",
	"Ategrity Specialty Insurance Company":               "16427",
	"Atain Specialty Insurance Company":                  "17159",
	"Berkley Assurance Company":                          "39462",
	"Canopius US Insurance Inc":                          "15692",
	"Capitol Indemnity Corporation":                      "10472",
	"Chubb Custom Insurance Company":                     "21784",
	"Colony Insurance Company":                           "39993",
	"Crum and Forster Specialty Insurance Company":       "44520",
	"Evanston Insurance Company":                         "35378",
	"Everest Indemnity Insurance Company":                "10851",
	"General Security Indemnity Company of Arizona":      "15865",
	"General Star Indemnity Company":                     "37362",
	"Gotham Insurance Company":                           "25569",
	"Hamilton Select Insurance Inc":                      "17178",
	"Great American E&S Insurance Company":               "26344",
	"Hallmark Specialty Insurance Company":               "44768",
	"Houston Casualty Company":                           "42374",
	"Illinois Union Insurance Company":                   "27960",
	"Indian Harbor Insurance Company":                    "36940",
	"James River Insurance Company":                      "12203",
	"Kinsale Insurance Company":                          "38920",
	"Landmark American Insurance Company":                "33138",
	"Lexington Insurance Company":                        "19437",
	"Markel Insurance Company":                           "38970",
	"Maxum Indemnity Company":                            "26743",
	"Mt Hawley Insurance Company":                        "22306",
	"National Fire and Marine Insurance Company":         "20079",
	"Nautilus Insurance Company":                         "17370",
	"Nonprofits Insurance Alliance of California":        "10023",
	"North American Capacity Insurance Company":          "43575",
	"Old Republic Union Insurance Company":               "24147",
	"Prime Insurance Company":                            "17809",
	"QBE Specialty Insurance Company":                    "10219",
	"RLI Insurance Company":                              "13056",
	"Safety Specialty Insurance Company":                 "39012",
	"Scottsdale Insurance Company":                       "41297",
	"Seneca Insurance Company":                           "10936",
	"Starr Surplus Lines Insurance Company":              "13604",
	"State National Insurance Company":                   "12831",
	"Steadfast Insurance Company":                        "26387",
	"Sutton Specialty Insurance Company":                 "16848",
	"SiriusPoint Specialty Insurance Corporation":        "16820",
	"Third Coast Insurance Company":                      "10713",
	"Trisura Specialty Insurance Company":                "16188",
	"Tudor Insurance Company":                            "37982",
	"United National Insurance Company":                  "13064",
	"Westchester Surplus Lines Insurance Company":        "10172",
	"XL Specialty Insurance Company":                     "37885",
	"Starstone Specialty Insurance Company":              "44776",
}

// NAICCode returns the registration code for a carrier legal name, or ""
// when the carrier is not in the table.
func NAICCode(name string) string {
	return naicCodes[name]
}

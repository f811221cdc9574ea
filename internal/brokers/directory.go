// Package brokers holds the static directory of approved suppliers.
// Lookups are case-insensitive; the table itself is read-only.
package brokers

import "strings"

// Entry is one approved supplier with an optional known postal address.
type Entry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// directory lists every approved account in display order. Only a handful
// of head-office addresses are known up front; the rest stay empty and are
// filled in by the reviewer.
var directory = []Entry{
	{Name: "ACM ENVIRONMENTAL PLC"},
	{Name: "ACUMEN WASTE SERVICES"},
	{Name: "707 LTD - CLICK WASTE"},
	{Name: "AQUA FORCE SPECIAL WASTE LTD"},
	{Name: "AMA WASTE"},
	{Name: "ASSOCIATED WASTE MANAGEMENT LTD"},
	{Name: "ASPREY ST JOHN & CO LTD"},
	{Name: "ASH WASTE SERVICES LTD"},
	{Name: "ACMS WASTE LIMITED"},
	{Name: "A1 CHEMICAL WASTE MANAGEMENT LTD"},
	{Name: "ALCHEMY METALS LTD"},
	{Name: "BAKERS WASTE SERVICES LTD"},
	{Name: "BIFFA WASTE SERVICES LIMITED", Address: "Biffa House, Rigby Court\nWokingham\nBerkshire\nRG41 5BN"},
	{Name: "BW SKIP HIRE"},
	{Name: "BYWATERS (LEYTON) LIMITED"},
	{Name: "BAGNALL & MORRIS WASTE SERVICES LTD"},
	{Name: "BAILEYS SKIP HIRE AND RECYCLING LTD"},
	{Name: "BUSINESS WASTE LTD"},
	{Name: "BROWN RECYCLING LTD"},
	{Name: "BKP WASTE & RECYCLING LTD"},
	{Name: "BELFORD BROS SKIP HIRE LTD"},
	{Name: "COUNTRYSTYLE RECYCLING LTD"},
	{Name: "CARTWRIGHTS WASTE DISPOSAL SERVICES"},
	{Name: "C & M WASTE MANAGEMENT LTD"},
	{Name: "CHANGE WASTE RECYCLING LIMITED"},
	{Name: "CHLOROS ENVIRONMENTAL LTD"},
	{Name: "CHC WASTE FM LTD"},
	{Name: "CLEANSING SERVICE GROUP LTD"},
	{Name: "CIRCLE WASTE LTD"},
	{Name: "CITY WASTE LONDON LTD"},
	{Name: "CHESHIRE WASTE SKIP HIRE LIMITED"},
	{Name: "CIRCOM LTD"},
	{Name: "CITB"},
	{Name: "DP SKIP HIRE LTD"},
	{Name: "FORWARD ENVIRONMENTAL LTD"},
	{Name: "EMN PLANT LTD"},
	{Name: "E-CYCLE LIMITED"},
	{Name: "ENVA ENGLAND LTD"},
	{Name: "ELLGIA LTD"},
	{Name: "ECO-CYCLE WASTE MANAGEMENT LTD"},
	{Name: "ENVA WEEE RECYCLING SCOTLAND LTD"},
	{Name: "FPWM LTD T/A FOOTPRINT RECYCLING"},
	{Name: "FORWARD WASTE MANAGEMENT LTD"},
	{Name: "FRESH START WASTE LTD"},
	{Name: "FORVIS MAZARS LLP"},
	{Name: "GREENZONE FACILITIES MANAGEMENT LTD"},
	{Name: "GREENWAY ENVIRONMENTAL LTD"},
	{Name: "GPT WASTE MANAGEMENT LTD"},
	{Name: "GO GREEN", Address: "323 Bawtry Road\nDoncaster\nEngland DN4 7PB\nUnited Kingdom"},
	{Name: "GERMSTAR UK LTD"},
	{Name: "GD ENVIRONMENTAL SERVICES LTD"},
	{Name: "GREAT WESTERN RECYCLING LTD"},
	{Name: "GRUNDON WASTE MANAGEMENT LTD"},
	{Name: "GILLETT ENVIRONMENTAL LTD"},
	{Name: "GO FOR IT TRADING LTD"},
	{Name: "GO 4 GREENER WASTE MANAGEMENT LTD"},
	{Name: "INTELLIGENT WASTE MANAGEMENT LIMITED"},
	{Name: "J & B RECYCLING LTD"},
	{Name: "JUST CLEAR LTD."},
	{Name: "JUST A STEP UK LTD"},
	{Name: "J DICKINSON & SONS (HORWICH) LIMITED"},
	{Name: "KENNY WASTE MANAGEMENT LTD"},
	{Name: "KANE MANAGEMENT CONSULTANCY LTD"},
	{Name: "LSS WASTE MANAGEMENT"},
	{Name: "LTL SYSTEMS LTD"},
	{Name: "MITIE WASTE & ENVIRONMENTAL SERVICES LIMITED", Address: "1 Bartholomew Lane\nLondon\nEC2N 2AX"},
	{Name: "M J CHURCH RECYCLING LTD"},
	{Name: "M & M SKIP HIRE LTD"},
	{Name: "MVV ENVIRONMENT"},
	{Name: "MICK GEORGE RECYCLING LTD"},
	{Name: "NWH WASTE SERVICES"},
	{Name: "NATIONWIDE WASTE SERVICES LIMITED"},
	{Name: "OPTIMA HEALTH UK LTD"},
	{Name: "PREMIER WASTE RECYCLING LTD"},
	{Name: "PEARCE RECYCLING COMPANY LTD"},
	{Name: "PHOENIX ENVIRONMENTAL MANAGEMENT LTD"},
	{Name: "PAPILO LTD"},
	{Name: "RFMW UK LTD"},
	{Name: "RIVERDALE PAPER PLC"},
	{Name: "REMONDIS LTD"},
	{Name: "ROYDON RESOURCE RECOVERY LIMITED"},
	{Name: "RISINXTREME LIMITED"},
	{Name: "RECORRA LTD"},
	{Name: "SACKERS LTD"},
	{Name: "SUEZ RECYCLING AND RECOVERY UK LTD", Address: "2100 Coventry Road\nSheldon\nBirmingham\nB26 3EA"},
	{Name: "SAFETY KLEEN UK LIMITED"},
	{Name: "MOBIUS ENVIRONMENTAL LTD"},
	{Name: "SUSTAINABLE WASTE SERVICES"},
	{Name: "SELECT A SKIP UK LTD"},
	{Name: "SLICKER RECYCLING LTD"},
	{Name: "SOMMERS WASTE SOLUTIONS LIMITED"},
	{Name: "SAICA NATUR UK LTD"},
	{Name: "SITE CLEAR SOLUTIONS LTD"},
	{Name: "SHARP BROTHERS (SKIPS) LTD"},
	{Name: "SLM WASTE MANAGEMENT LIMITED"},
	{Name: "SHREDALL (EAST MIDLANDS) LIMITED"},
	{Name: "SCOTT WASTE LIMITED"},
	{Name: "SMITHS (GLOUCESTER) LTD."},
	{Name: "TRADEBE NORTH WEST LTD"},
	{Name: "THE WASTE BROKERAGE CO LTD"},
	{Name: "T.WARD & SON LTD"},
	{Name: "TERRACYCLE UK LIMITED"},
	{Name: "UK WASTE SOLUTIONS LTD"},
	{Name: "UBT (EU) LTD"},
	{Name: "VEOLIA ES (UK) LTD", Address: "Veolia House\n154A Pentonville Road\nLondon\nN1 9JE"},
	{Name: "VERTO RECYCLE LTD"},
	{Name: "WASTE MANAGEMENT FACILITIES LTD"},
	{Name: "RECONOMY (UK) LTD"},
	{Name: "WATERMAN WASTE MANAGEMENT LTD"},
	{Name: "WASTENOT LTD"},
	{Name: "WASTE WISE MANAGEMENT SOLUTIONS"},
	{Name: "WEEE (SCOTLAND) LTD"},
	{Name: "WM101 LTD"},
	{Name: "WHITKIRK WASTE SOLUTIONS LTD"},
	{Name: "WILLIAMS ENVIRONMENTAL MANAGEMENT LTD"},
	{Name: "WASTESOLVE LIMITED"},
	{Name: "WMR WASTE SOLUTIONS LTD"},
	{Name: "WHEELDON BROTHERS WASTE LTD"},
	{Name: "WASTE CLOUD LIMITED"},
	{Name: "YORWASTE LTD"},
	{Name: "YES WASTE LIMITED"},
}

var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(directory))
	for _, e := range directory {
		m[strings.ToUpper(e.Name)] = e
	}
	return m
}()

// Lookup returns the canonical entry for name, matching case-insensitively
// and ignoring surrounding whitespace.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	return e, ok
}

// Address returns the known address for name, or "" when the supplier is
// unknown or has no address on file.
func Address(name string) string {
	e, _ := Lookup(name)
	return e.Address
}

// All returns every entry in declaration order.
func All() []Entry {
	out := make([]Entry, len(directory))
	copy(out, directory)
	return out
}

// PromptList returns the comma-joined canonical names for embedding into
// the extraction instruction.
func PromptList() string {
	names := make([]string, len(directory))
	for i, e := range directory {
		names[i] = e.Name
	}
	return strings.Join(names, ", ")
}

// Count returns the number of approved suppliers.
func Count() int {
	return len(directory)
}

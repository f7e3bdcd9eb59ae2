package history

import (
	"cmp"
	"slices"
)

// Final is one past edition of the tournament.
type Final struct {
	Year     int    `json:"year"`
	Host     string `json:"host"`
	Champion string `json:"champion"`
	RunnerUp string `json:"runner_up"`
	Score    string `json:"score"`
}

// TitleCount is the number of titles won by one country.
type TitleCount struct {
	Country string `json:"country"`
	Titles  int    `json:"titles"`
	Flag    string `json:"flag"`
}

var flags = map[string]string{
	"Egypt": "🇪🇬", "Cameroon": "🇨🇲", "Ghana": "🇬🇭", "Nigeria": "🇳🇬",
	"Côte d'Ivoire": "🇨🇮", "Algeria": "🇩🇿", "Senegal": "🇸🇳", "Morocco": "🇲🇦",
	"Tunisia": "🇹🇳", "South Africa": "🇿🇦", "DR Congo": "🇨🇩", "Zaire (DR Congo)": "🇨🇩",
	"Congo": "🇨🇬", "Sudan": "🇸🇩", "Ethiopia": "🇪🇹", "Zambia": "🇿🇲",
	"Burkina Faso": "🇧🇫", "Guinea": "🇬🇳", "Mali": "🇲🇱", "Gabon": "🇬🇦",
	"Equatorial Guinea": "🇬🇶", "Angola": "🇦🇴", "Uganda": "🇺🇬", "Libya": "🇱🇾",
}

const unknownFlag = "🏴"

func Flag(country string) string {
	if f, ok := flags[country]; ok {
		return f
	}
	return unknownFlag
}

// Finals returns every final, most recent first.
func Finals() []Final {
	return slices.Clone(finals)
}

// TitleCounts ranks countries by titles won, ties broken by country name.
func TitleCounts(items []Final) []TitleCount {
	counts := make(map[string]int)
	for _, f := range items {
		counts[f.Champion]++
	}

	out := make([]TitleCount, 0, len(counts))
	for country, titles := range counts {
		out = append(out, TitleCount{Country: country, Titles: titles, Flag: Flag(country)})
	}
	slices.SortFunc(out, func(a, b TitleCount) int {
		if c := cmp.Compare(b.Titles, a.Titles); c != 0 {
			return c
		}
		return cmp.Compare(a.Country, b.Country)
	})
	return out
}

var finals = []Final{
	{Year: 2024, Host: "Côte d'Ivoire", Champion: "Côte d'Ivoire", RunnerUp: "Nigeria", Score: "2-1"},
	{Year: 2023, Host: "Côte d'Ivoire (rep.)", Champion: "Senegal", RunnerUp: "Egypt", Score: "0-0 (4-2 pen)"},
	{Year: 2021, Host: "Cameroon", Champion: "Senegal", RunnerUp: "Egypt", Score: "0-0 (4-2 pen)"},
	{Year: 2019, Host: "Egypt", Champion: "Algeria", RunnerUp: "Senegal", Score: "1-0"},
	{Year: 2017, Host: "Gabon", Champion: "Cameroon", RunnerUp: "Egypt", Score: "2-1"},
	{Year: 2015, Host: "Equatorial Guinea", Champion: "Côte d'Ivoire", RunnerUp: "Ghana", Score: "0-0 (9-8 pen)"},
	{Year: 2013, Host: "South Africa", Champion: "Nigeria", RunnerUp: "Burkina Faso", Score: "1-0"},
	{Year: 2012, Host: "Gabon/Eq. Guinea", Champion: "Zambia", RunnerUp: "Côte d'Ivoire", Score: "0-0 (8-7 pen)"},
	{Year: 2010, Host: "Angola", Champion: "Egypt", RunnerUp: "Ghana", Score: "1-0"},
	{Year: 2008, Host: "Ghana", Champion: "Egypt", RunnerUp: "Cameroon", Score: "1-0"},
	{Year: 2006, Host: "Egypt", Champion: "Egypt", RunnerUp: "Côte d'Ivoire", Score: "0-0 (4-2 pen)"},
	{Year: 2004, Host: "Tunisia", Champion: "Tunisia", RunnerUp: "Morocco", Score: "2-1"},
	{Year: 2002, Host: "Mali", Champion: "Cameroon", RunnerUp: "Senegal", Score: "0-0 (3-2 pen)"},
	{Year: 2000, Host: "Ghana/Nigeria", Champion: "Cameroon", RunnerUp: "Nigeria", Score: "2-2 (4-3 pen)"},
	{Year: 1998, Host: "Burkina Faso", Champion: "Egypt", RunnerUp: "South Africa", Score: "2-0"},
	{Year: 1996, Host: "South Africa", Champion: "South Africa", RunnerUp: "Tunisia", Score: "2-0"},
	{Year: 1994, Host: "Tunisia", Champion: "Nigeria", RunnerUp: "Zambia", Score: "2-1"},
	{Year: 1992, Host: "Senegal", Champion: "Côte d'Ivoire", RunnerUp: "Ghana", Score: "0-0 (11-10 pen)"},
	{Year: 1990, Host: "Algeria", Champion: "Algeria", RunnerUp: "Nigeria", Score: "1-0"},
	{Year: 1988, Host: "Morocco", Champion: "Cameroon", RunnerUp: "Nigeria", Score: "1-0"},
	{Year: 1986, Host: "Egypt", Champion: "Egypt", RunnerUp: "Cameroon", Score: "0-0 (5-4 pen)"},
	{Year: 1984, Host: "Côte d'Ivoire", Champion: "Cameroon", RunnerUp: "Nigeria", Score: "3-1"},
	{Year: 1982, Host: "Libya", Champion: "Ghana", RunnerUp: "Libya", Score: "1-1 (7-6 pen)"},
	{Year: 1980, Host: "Nigeria", Champion: "Nigeria", RunnerUp: "Algeria", Score: "3-0"},
	{Year: 1978, Host: "Ghana", Champion: "Ghana", RunnerUp: "Uganda", Score: "2-0"},
	{Year: 1976, Host: "Ethiopia", Champion: "Morocco", RunnerUp: "Guinea", Score: "1-1"},
	{Year: 1974, Host: "Egypt", Champion: "Zaire (DR Congo)", RunnerUp: "Zambia", Score: "2-2"},
	{Year: 1972, Host: "Cameroon", Champion: "Congo", RunnerUp: "Mali", Score: "3-2"},
	{Year: 1970, Host: "Sudan", Champion: "Sudan", RunnerUp: "Ghana", Score: "1-0"},
	{Year: 1968, Host: "Ethiopia", Champion: "Zaire (DR Congo)", RunnerUp: "Ghana", Score: "1-0"},
	{Year: 1965, Host: "Tunisia", Champion: "Ghana", RunnerUp: "Tunisia", Score: "3-2"},
	{Year: 1963, Host: "Ghana", Champion: "Ghana", RunnerUp: "Sudan", Score: "3-0"},
	{Year: 1962, Host: "Ethiopia", Champion: "Ethiopia", RunnerUp: "Egypt", Score: "4-2"},
	{Year: 1959, Host: "Egypt", Champion: "Egypt", RunnerUp: "Sudan", Score: "2-1"},
	{Year: 1957, Host: "Sudan", Champion: "Egypt", RunnerUp: "Ethiopia", Score: "4-0"},
}

package model

// NFLTeams is the canonical set of teams the pool runs on. The schema seeds
// the teams table from the same list, and the names match what the results
// provider sends so that result mapping works without aliases.
var NFLTeams = []Team{
	// NFC
	{Code: "ARI", Name: "Arizona Cardinals"},
	{Code: "ATL", Name: "Atlanta Falcons"},
	{Code: "CAR", Name: "Carolina Panthers"},
	{Code: "CHI", Name: "Chicago Bears"},
	{Code: "DAL", Name: "Dallas Cowboys"},
	{Code: "DET", Name: "Detroit Lions"},
	{Code: "GB", Name: "Green Bay Packers"},
	{Code: "LAR", Name: "Los Angeles Rams"},
	{Code: "MIN", Name: "Minnesota Vikings"},
	{Code: "NO", Name: "New Orleans Saints"},
	{Code: "NYG", Name: "New York Giants"},
	{Code: "PHI", Name: "Philadelphia Eagles"},
	{Code: "SF", Name: "San Francisco 49ers"},
	{Code: "SEA", Name: "Seattle Seahawks"},
	{Code: "TB", Name: "Tampa Bay Buccaneers"},
	{Code: "WAS", Name: "Washington Commanders"},

	// AFC
	{Code: "BAL", Name: "Baltimore Ravens"},
	{Code: "BUF", Name: "Buffalo Bills"},
	{Code: "CIN", Name: "Cincinnati Bengals"},
	{Code: "CLE", Name: "Cleveland Browns"},
	{Code: "DEN", Name: "Denver Broncos"},
	{Code: "HOU", Name: "Houston Texans"},
	{Code: "IND", Name: "Indianapolis Colts"},
	{Code: "JAX", Name: "Jacksonville Jaguars"},
	{Code: "KC", Name: "Kansas City Chiefs"},
	{Code: "LV", Name: "Las Vegas Raiders"},
	{Code: "LAC", Name: "Los Angeles Chargers"},
	{Code: "MIA", Name: "Miami Dolphins"},
	{Code: "NE", Name: "New England Patriots"},
	{Code: "NYJ", Name: "New York Jets"},
	{Code: "PIT", Name: "Pittsburgh Steelers"},
	{Code: "TEN", Name: "Tennessee Titans"},
}

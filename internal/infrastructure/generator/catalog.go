package generator

import "github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"

// BaseURL prefixes the reference link of every team.
const BaseURL = "https://www.transfermarkt.com"

type teamEntry struct {
	Name  string
	Value string
}

type groupEntry struct {
	Label string
	Teams []teamEntry
}

// tournamentGroups is the draw of AFCON 2025 in Morocco with literal squad valuations.
var tournamentGroups = []groupEntry{
	{Label: "Group A", Teams: []teamEntry{
		{Name: "Morocco", Value: "€487.2m"},
		{Name: "Mali", Value: "€124.5m"},
		{Name: "Zambia", Value: "€22.1m"},
		{Name: "Tanzania", Value: "€8.4m"},
	}},
	{Label: "Group B", Teams: []teamEntry{
		{Name: "Egypt", Value: "€158.9m"},
		{Name: "South Africa", Value: "€51.8m"},
		{Name: "Zimbabwe", Value: "€14.2m"},
		{Name: "Cape Verde", Value: "€38.5m"},
	}},
	{Label: "Group C", Teams: []teamEntry{
		{Name: "Senegal", Value: "€412.8m"},
		{Name: "Cameroon", Value: "€234.1m"},
		{Name: "Guinea", Value: "€98.3m"},
		{Name: "Gambia", Value: "€42.6m"},
	}},
	{Label: "Group D", Teams: []teamEntry{
		{Name: "Nigeria", Value: "€289.3m"},
		{Name: "Côte d'Ivoire", Value: "€320.5m"},
		{Name: "Equatorial Guinea", Value: "€12.8m"},
		{Name: "Guinea-Bissau", Value: "€15.4m"},
	}},
	{Label: "Group E", Teams: []teamEntry{
		{Name: "Algeria", Value: "€178.5m"},
		{Name: "Burkina Faso", Value: "€67.2m"},
		{Name: "Angola", Value: "€25.3m"},
		{Name: "Mauritania", Value: "€18.9m"},
	}},
	{Label: "Group F", Teams: []teamEntry{
		{Name: "Tunisia", Value: "€95.7m"},
		{Name: "DR Congo", Value: "€143.6m"},
		{Name: "Uganda", Value: "€19.5m"},
		{Name: "Namibia", Value: "€6.2m"},
	}},
}

var clubs = []string{
	"Al Ahly", "Wydad Casablanca", "TP Mazembe", "Mamelodi Sundowns",
	"Premier League", "La Liga", "Serie A", "Bundesliga", "Ligue 1",
	"Saudi Pro League", "MLS", "Süper Lig", "Eredivisie", "Portuguese League",
}

// Clubs returns the pool players are assigned from.
func Clubs() []string {
	return append([]string(nil), clubs...)
}

const defaultNameBank = "Default"

var nameBanks = map[string][]string{
	"Morocco": {"Yassine Bounou", "Achraf Hakimi", "Romain Saïss", "Nayef Aguerd", "Noussair Mazraoui",
		"Sofyan Amrabat", "Azzedine Ounahi", "Hakim Ziyech", "Youssef En-Nesyri", "Zakaria Aboukhlal",
		"Munir El Haddadi", "Bilal El Khannouss", "Amine Harit", "Ilias Chair", "Abde Ezzalzouli",
		"Yahya Attiat-Allah", "Anass Zaroury", "Youssef Maleh", "Walid Cheddira", "Abdelhamid Sabiri",
		"Bono Munir", "Yahya Jabrane", "Ayoub El Kaabi"},
	"Senegal": {"Édouard Mendy", "Kalidou Koulibaly", "Abdou Diallo", "Idrissa Gueye", "Cheikhou Kouyaté",
		"Sadio Mané", "Ismaïla Sarr", "Krepin Diatta", "Boulaye Dia", "Famara Diédhiou",
		"Pape Matar Sarr", "Nampalys Mendy", "Iliman Ndiaye", "Nicolas Jackson", "Habib Diallo",
		"Pape Gueye", "Pathé Ciss", "Lamine Camara", "Mikayil Faye", "Formose Mendy",
		"Seny Dieng", "Youssouf Sabaly", "Abdoulaye Seck"},
	"Nigeria": {"Victor Osimhen", "Taiwo Awoniyi", "Samuel Chukwueze", "Ademola Lookman", "Moses Simon",
		"Alex Iwobi", "Wilfred Ndidi", "Frank Onyeka", "Joe Aribo", "Kelechi Iheanacho",
		"Ola Aina", "William Troost-Ekong", "Calvin Bassey", "Bright Osayi-Samuel", "Semi Ajayi",
		"Maduka Okoye", "Francis Uzoho", "Raphael Onyedika", "Emmanuel Dennis", "Paul Onuachu",
		"Terem Moffi", "Chidozie Awaziem", "Kenneth Omeruo"},
	"Egypt": {"Mohamed Salah", "Mohamed Elneny", "Omar Marmoush", "Mostafa Mohamed", "Trézéguet",
		"Ahmed Hegazy", "Mohamed Abdelmonem", "Mahmoud Hassan Trezeguet", "Zizo", "Afsha",
		"Omar Kamal", "Ahmed Sayed Zizo", "Hussein El Shahat", "Emam Ashour", "Akram Tawfik",
		"Mohamed El Shenawy", "Mohamed Sobhi", "Marwan Hamdy", "Omar Fayed", "Ahmed Fattouh",
		"Hamza Alaa", "Taher Mohamed", "Mohamed Hamdy"},
	"Cameroon": {"André Onana", "Collins Fai", "Jean-Charles Castelletto", "Nouhou Tolo", "André-Frank Zambo Anguissa",
		"Bryan Mbeumo", "Karl Toko Ekambi", "Eric Maxim Choupo-Moting", "Vincent Aboubakar", "Georges-Kévin Nkoudou",
		"Frank Anguissa", "Pierre Kunde", "Olivier Kemen", "Jean Onana", "Enzo Ebosse",
		"Christopher Wooh", "Nicolas Moumi Ngamaleu", "Ignatius Ganago", "Christian Bassogog", "Olivier Ntcham",
		"Ablie Jallow", "Devis Epassy", "Jeando Fuchs"},
	"Côte d'Ivoire": {"Sébastien Haller", "Nicolas Pépé", "Franck Kessié", "Wilfried Singo", "Serge Aurier",
		"Simon Deli", "Eric Bailly", "Willy Boly", "Ibrahim Sangaré", "Jean-Philippe Gbamin",
		"Max Gradel", "Jonathan Bamba", "Christian Kouamé", "Wilfried Zaha", "Jean Evrard Kouassi",
		"Odilon Kossounou", "Ghislain Konan", "Jérémie Boga", "Hamed Traore", "Seko Fofana",
		"Simon Adingra", "Ousmane Diomande", "Evan Ndicka"},
	"Algeria": {"Riyad Mahrez", "Islam Slimani", "Baghdad Bounedjah", "Youcef Belaïli", "Sofiane Feghouli",
		"Ismael Bennacer", "Houssem Aouar", "Ramiz Zerrouki", "Nabil Bentaleb", "Adlène Guedioura",
		"Ramy Bensebaini", "Aïssa Mandi", "Mohamed Amine Tougai", "Youcef Atal", "Mohamed Réda Halaimia",
		"Alexandre Oukidja", "Anthony Mandrea", "Farès Chaïbi", "Mohamed Amoura", "Saïd Benrahma",
		"Amine Gouiri", "Yasser Larouci", "Rayan Aït-Nouri"},
	"Tunisia": {"Wahbi Khazri", "Youssef Msakni", "Naïm Sliti", "Ellyes Skhiri", "Aïssa Laïdouni",
		"Mohamed Dräger", "Hamza Mathlouthi", "Montassar Talbi", "Dylan Bronn", "Ali Maâloul",
		"Hannibal Mejbri", "Seifeddine Jaziri", "Issam Jebali", "Anis Ben Slimane", "Saad Bguir",
		"Aymen Dahmen", "Béchir Ben Saïd", "Ferjani Sassi", "Mohamed Ali Ben Romdhane", "Haythem Jouini",
		"Hamza Rafia", "Elias Achouri", "Alaa Ghram"},
	"Mali": {"Amadou Haidara", "Yves Bissouma", "Hamari Traoré", "Boubacar Kouyaté", "Moussa Djenepo",
		"Adama Traoré", "Kalifa Coulibaly", "Ibrahima Koné", "El Bilal Touré", "Moussa Doumbia",
		"Lassine Sinayoko", "Kamory Doumbia", "Cheick Oumar Doucouré", "Diadié Samassékou", "Amadou Dante",
		"Ibrahim Mounkoro", "Djigui Diarra", "Falaye Sacko", "Massadio Haïdara", "Kiki Kouyaté",
		"Aliou Dieng", "Fousseni Diabaté", "Adama Noss Traoré"},
	"Ghana": {"Thomas Partey", "Mohammed Kudus", "Jordan Ayew", "André Ayew", "Kamaldeen Sulemana",
		"Daniel Amartey", "Alexander Djiku", "Alidu Seidu", "Denis Odoi", "Gideon Mensah",
		"Joseph Paintsil", "Antoine Semenyo", "Iñaki Williams", "Ernest Nuamah", "Edmund Addo",
		"Lawrence Ati-Zigi", "Salis Abdul Samed", "Elisha Owusu", "Ibrahim Osman", "Christopher Antwi-Adjei",
		"Brandon Thomas-Asante", "Tariq Lamptey", "Mohammed Salisu"},
	"Burkina Faso": {"Bertrand Traoré", "Gustavo Sangaré", "Edmond Tapsoba", "Hassane Bandé", "Issa Kaboré",
		"Steeve Yago", "Adama Guira", "Blati Touré", "Abdoul Tapsoba", "Dango Ouattara",
		"Hervé Koffi", "Issoufou Dayo", "Nasser Djiga", "Sacha Banse", "Saidou Simporé",
		"Cédric Badolo", "Mohamed Konaté", "Aziz Ki", "Dramane Salou", "Abdoul Fessal Tapsoba",
		"Adama Nagalo", "Sofiane Ouédraogo", "Salifou Diarrassouba"},
	"DR Congo": {"Chancel Mbemba", "Arthur Masuaku", "Gaël Kakuta", "Cédric Bakambu", "Yoane Wissa",
		"Théo Bongonda", "Silas Katompa", "Samuel Moutoussamy", "Meschack Elia", "Simon Banza",
		"Lionel Mpasi", "Dylan Batubinsika", "Rocky Bushiri", "Aaron Tshibola", "Edo Kayembe",
		"Grejohn Kyei", "Yannick Bolasie", "Fiston Mayele", "Grady Diangana", "Charles Pickel",
		"Henoc Inonga", "Joris Kayembe", "Nathan Fasika"},
	"South Africa": {"Percy Tau", "Khuliso Mudau", "Teboho Mokoena", "Thapelo Morena", "Themba Zwane",
		"Ronwen Williams", "Mothobi Mvala", "Nyiko Mobbie", "Zakhele Lepasa", "Evidence Makgopa",
		"Lyle Foster", "Grant Margeman", "Oswin Appollis", "Mihlali Mayambela", "Aubrey Modiba",
		"Siyanda Xulu", "Terrence Mashego", "Elias Mokwana", "Relebohile Mofokeng", "Thabang Monare",
		"Luke Fleurs", "Mbongeni Mzimela", "Iqraam Rayners"},
	"Guinea": {"Naby Keïta", "Amadou Diawara", "Ibrahima Conté", "Issiaga Sylla", "Mouctar Diakhaby",
		"Mohamed Bayo", "Serhou Guirassy", "Morgan Guilavogui", "Aguibou Camara", "Ibrahim Diakité",
		"Aly Keita", "Julian Jeanvier", "Ousmane Kanté", "Antoine Conté", "Saïdou Sow",
		"Facinet Conte", "José Kanté", "Simon Falette", "Mohamed Ali Camara", "Abdoulaye Touré",
		"Morlaye Sylla", "François Kamano", "Amadou Diallo"},
	defaultNameBank: {"Mohamed Ahmed", "Ibrahim Hassan", "Youssef Ali", "Omar Khalil", "Moussa Diarra",
		"Abdoulaye Sow", "Emmanuel Mensah", "Patrick Banda", "Joseph Phiri", "Daniel Chama",
		"Samuel Osei", "Benjamin Traore", "Christian Kofi", "Francis Amoah", "George Owusu",
		"Kwame Asante", "Kofi Mensah", "Richard Boateng", "Stephen Addai", "Felix Annan",
		"Lawrence Adjei", "Ernest Asante", "Collins Fynn"},
}

// nameVariantSuffixes replace the family name when a bank runs short.
var nameVariantSuffixes = []string{"Jr.", "II", "Mohamed", "Ahmed"}

// matchdayDates holds the three kickoff dates of each group-stage matchday.
var matchdayDates = map[int][3]string{
	1: {"2025-12-21", "2025-12-22", "2025-12-23"},
	2: {"2025-12-25", "2025-12-26", "2025-12-27"},
	3: {"2025-12-29", "2025-12-30", "2025-12-31"},
}

const matchdays = 3

type knockoutRound struct {
	Phase string
	Dates []string
}

// knockoutSchedule is the fixed single-elimination skeleton, one fixture per listed date.
var knockoutSchedule = []knockoutRound{
	{Phase: fixture.PhaseRoundOf16, Dates: []string{"2026-01-04", "2026-01-05", "2026-01-06", "2026-01-07"}},
	{Phase: fixture.PhaseQuarterFinals, Dates: []string{"2026-01-10", "2026-01-11"}},
	{Phase: fixture.PhaseSemiFinals, Dates: []string{"2026-01-14", "2026-01-15"}},
	{Phase: fixture.PhaseFinal, Dates: []string{"2026-01-18"}},
}

package search

type fixtureMotif struct {
	name      string
	counts    [][]float64
	threshold float64
}

// apFAB46 is the reference promoter sequence.
const apFAB46 = "AAAAAGACAATGAAAAGCTTAGTCATGGCGCGCCAAAAAGAGTATTG" +
	"ACTTCGCATCTTTTTGTACCTATAATAGATTCATTGCTA"

var fixtureMotifs = []fixtureMotif{
	{
		name: "zfp4_yrk_3p",
		counts: [][]float64{
			{250, 130, 0, 0, 20, 0, 0, 40, 50},
			{100, 50, 0, 0, 0, 0, 10, 0, 0},
			{10, 200, 380, 380, 0, 380, 150, 340, 0},
			{20, 0, 0, 0, 360, 0, 220, 0, 330},
		},
		threshold: 1.0699545943859903,
	},
	{
		name: "ttgR",
		counts: [][]float64{
			{7.5, 44.5, 0.0, 0.0, 2.5, 47.5, 8.5},
			{21.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			{3.5000000000000004, 0.0, 0.0, 50.0, 0.0, 0.0, 0.0},
			{18.0, 5.5, 50.0, 0.0, 47.5, 2.5, 43.0},
		},
		threshold: 0.7897693125951122,
	},
	{
		name: "cdaR",
		counts: [][]float64{
			{35, 4, 0, 3, 28, 7, 42, 49, 31, 23},
			{1, 7, 0, 57, 20, 46, 5, 1, 6, 5},
			{2, 0, 59, 0, 0, 0, 5, 1, 2, 25},
			{22, 49, 1, 0, 12, 7, 8, 9, 21, 7},
		},
		threshold: 0.6726083744651952,
	},
	{
		name: "p22_cI",
		counts: [][]float64{
			{80, 113, 0, 0, 0, 468, 581, 396, 35},
			{68, 20, 581, 0, 0, 35, 0, 10, 0},
			{160, 0, 0, 0, 0, 0, 0, 10, 0},
			{273, 448, 0, 581, 581, 78, 0, 165, 546},
		},
		threshold: 1.2680761835227123,
	},
	{
		name: "rpol_10",
		counts: [][]float64{
			{23, 373, 105, 210, 210, 0},
			{43, 0, 66, 51, 97, 19},
			{19, 3, 51, 55, 37, 11},
			{316, 25, 179, 85, 57, 371},
		},
		threshold: 1.2225352937342997,
	},
	{
		name: "zfp7_ZP10165",
		counts: [][]float64{
			{50, 0, 0, 50, 0, 0, 0, 0, 50, 0, 50},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 50, 50, 50, 0, 50, 0},
			{0, 50, 50, 0, 50, 0, 0, 0, 0, 0, 0},
		},
		threshold: 0.9676501362039236,
	},
	{
		name: "zfp1_efnba2_3p",
		counts: [][]float64{
			{3, 6, 0, 0, 6, 112, 0, 0, 6},
			{15, 112, 0, 0, 112, 0, 6, 118, 0},
			{100, 0, 118, 118, 0, 0, 112, 0, 112},
			{0, 0, 0, 0, 0, 6, 0, 0, 0},
		},
		threshold: 0.87457893821108,
	},
	{
		name: "lacI",
		counts: [][]float64{
			{30, 30, 0, 65, 200, 10, 100, 100, 60, 130},
			{30, 100, 0, 165, 30, 230, 30, 30, 30, 30},
			{200, 100, 0, 10, 10, 10, 30, 30, 40, 40},
			{0, 30, 260, 20, 20, 10, 100, 100, 130, 60},
		},
		threshold: 0.8775565485963774,
	},
	{
		name: "tetR",
		counts: [][]float64{
			{120, 40, 300, 100, 220, 100, 190, 50},
			{200, 0, 20, 45, 100, 20, 50, 70},
			{20, 300, 50, 20, 20, 200, 100, 150},
			{50, 50, 20, 225, 50, 70, 50, 120},
		},
		threshold: 0.7705603886602805,
	},
	{
		name: "933W_cI",
		counts: [][]float64{
			{985, 548, 1544, 0, 0, 1252, 0, 149},
			{0, 801, 0, 0, 0, 20, 1680, 0},
			{11, 33, 184, 1728, 0, 0, 0, 1393},
			{732, 346, 0, 0, 1728, 456, 48, 186},
		},
		threshold: 1.4143797568075485,
	},
	{
		name: "zfp6_ZP10363",
		counts: [][]float64{
			{0, 0, 0, 50, 0, 50, 0, 0, 0, 50, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 50, 0, 0, 50, 0, 0, 50, 50, 0, 50},
			{50, 0, 50, 0, 0, 0, 50, 0, 0, 0, 0},
		},
		threshold: 0.9676501362039236,
	},
	{
		name: "zfp5_ZN0024",
		counts: [][]float64{
			{50, 0, 50, 0, 0, 0, 50, 0, 0, 50, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 50},
			{0, 50, 0, 50, 0, 50, 0, 50, 50, 0, 0},
			{0, 0, 0, 0, 50, 0, 0, 0, 0, 0, 0},
		},
		threshold: 0.9676501362039236,
	},
	{
		name: "434_cI",
		counts: [][]float64{
			{621, 80, 186, 0, 0, 0, 0},
			{0, 76, 68, 30, 0, 0, 0},
			{0, 375, 0, 0, 0, 659, 0},
			{38, 128, 405, 629, 659, 0, 659},
		},
		threshold: 1.2748406244294834,
	},
	{
		name: "zfp2_dab2_3p",
		counts: [][]float64{
			{8, 178, 108, 0, 70, 158, 0, 150, 0},
			{0, 0, 0, 0, 0, 0, 0, 20, 8},
			{170, 0, 50, 178, 108, 20, 178, 0, 170},
			{0, 0, 20, 0, 0, 0, 0, 8, 0},
		},
		threshold: 1.024286840459233,
	},
	{
		name: "acuR",
		counts: [][]float64{
			{0.0, 0.0, 0.0, 0.0, 25.0, 21.0, 17.5, 34.5},
			{0.0, 0.0, 50.0, 2.0, 7.5, 0.0, 0.0, 0.0},
			{50.0, 0.0, 0.0, 0.0, 0.0, 11.5, 0.0, 2.0},
			{0.0, 50.0, 0.0, 48.0, 17.5, 17.5, 32.5, 13.5},
		},
		threshold: 0.6836163375410198,
	},
	{
		name: "rpol_35",
		counts: [][]float64{
			{42, 18, 18, 173, 142, 134, 116},
			{0, 0, 6, 135, 140, 50, 90},
			{0, 72, 244, 0, 40, 72, 82},
			{359, 311, 133, 93, 79, 145, 113},
		},
		threshold: 1.4530032582649177,
	},
	{
		name: "zfp8_ZP10457",
		counts: [][]float64{
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 50},
			{50, 0, 0, 0, 0, 0, 0, 0, 0, 50, 0},
			{0, 0, 0, 0, 50, 0, 0, 50, 50, 0, 0},
			{0, 50, 50, 50, 0, 50, 50, 0, 0, 0, 0},
		},
		threshold: 0.9676501362039236,
	},
	{
		name: "lambda_cI",
		counts: [][]float64{
			{50, 170, 45, 85, 30, 110, 0, 300},
			{310, 50, 0, 0, 0, 0, 0, 0},
			{50, 190, 365, 5, 380, 195, 0, 65},
			{0, 0, 0, 320, 0, 105, 410, 45},
		},
		threshold: 1.1239104755269196,
	},
	{
		name: "rpol_10_ext",
		counts: [][]float64{
			{0, 0, 100, 23, 373, 105, 210, 210, 0},
			{60, 0, 100, 43, 0, 66, 51, 97, 19},
			{140, 240, 100, 19, 3, 51, 55, 37, 11},
			{200, 160, 100, 316, 25, 179, 85, 57, 371},
		},
		threshold: 2.6755385519992174,
	},
}

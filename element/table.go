package element

// Symbols and standard atomic masses indexed by atomic number. Index 0 and the
// untabulated superheavy elements carry the sentinel symbol and a zero mass.
var table = [Count]entry{
	{"--", 0.0},      // 0
	{"H", 1.008},     // 1
	{"He", 4.0026},   // 2
	{"Li", 6.941},    // 3
	{"Be", 9.0122},   // 4
	{"B", 10.811},    // 5
	{"C", 12.011},    // 6
	{"N", 14.0067},   // 7
	{"O", 15.9994},   // 8
	{"F", 18.9984},   // 9
	{"Ne", 20.1797},  // 10
	{"Na", 22.9898},  // 11
	{"Mg", 24.305},   // 12
	{"Al", 26.9815},  // 13
	{"Si", 28.0855},  // 14
	{"P", 30.9737},   // 15
	{"S", 32.065},    // 16
	{"Cl", 35.453},   // 17
	{"Ar", 39.948},   // 18
	{"K", 39.0983},   // 19
	{"Ca", 40.078},   // 20
	{"Sc", 44.9559},  // 21
	{"Ti", 47.867},   // 22
	{"V", 50.9415},   // 23
	{"Cr", 51.9961},  // 24
	{"Mn", 54.938},   // 25
	{"Fe", 55.845},   // 26
	{"Co", 58.9332},  // 27
	{"Ni", 58.6934},  // 28
	{"Cu", 63.546},   // 29
	{"Zn", 65.38},    // 30
	{"Ga", 69.723},   // 31
	{"Ge", 72.64},    // 32
	{"As", 74.9216},  // 33
	{"Se", 78.96},    // 34
	{"Br", 79.904},   // 35
	{"Kr", 83.798},   // 36
	{"Rb", 85.4678},  // 37
	{"Sr", 87.62},    // 38
	{"Y", 88.9059},   // 39
	{"Zr", 91.224},   // 40
	{"Nb", 92.9064},  // 41
	{"Mo", 95.96},    // 42
	{"Tc", 98.0},     // 43
	{"Ru", 101.07},   // 44
	{"Rh", 102.9055}, // 45
	{"Pd", 106.42},   // 46
	{"Ag", 107.8682}, // 47
	{"Cd", 112.411},  // 48
	{"In", 114.818},  // 49
	{"Sn", 118.71},   // 50
	{"Sb", 121.76},   // 51
	{"Te", 127.6},    // 52
	{"I", 126.9045},  // 53
	{"Xe", 131.293},  // 54
	{"Cs", 132.91},   // 55
	{"Ba", 137.33},   // 56
	{"La", 138.91},   // 57
	{"Ce", 140.12},   // 58
	{"Pr", 140.91},   // 59
	{"Nd", 144.24},   // 60
	{"Pm", 145.0},    // 61
	{"Sm", 150.36},   // 62
	{"Eu", 151.96},   // 63
	{"Gd", 157.25},   // 64
	{"Tb", 158.93},   // 65
	{"Dy", 162.5},    // 66
	{"Ho", 164.93},   // 67
	{"Er", 167.26},   // 68
	{"Tm", 168.93},   // 69
	{"Yb", 173.05},   // 70
	{"Lu", 174.97},   // 71
	{"Hf", 178.49},   // 72
	{"Ta", 180.95},   // 73
	{"W", 183.84},    // 74
	{"Re", 186.21},   // 75
	{"Os", 190.23},   // 76
	{"Ir", 192.22},   // 77
	{"Pt", 195.08},   // 78
	{"Au", 196.97},   // 79
	{"Hg", 200.59},   // 80
	{"Tl", 204.38},   // 81
	{"Pb", 207.2},    // 82
	{"Bi", 208.98},   // 83
	{"Po", 209.0},    // 84
	{"At", 210.0},    // 85
	{"Rn", 222.0},    // 86
	{"Fr", 223.0},    // 87
	{"Ra", 226.0},    // 88
	{"Ac", 227.0},    // 89
	{"Th", 232.04},   // 90
	{"Pa", 231.04},   // 91
	{"U", 238.03},    // 92
	{"Np", 237.0},    // 93
	{"Pu", 244.0},    // 94
	{"Am", 243.0},    // 95
	{"Cm", 247.0},    // 96
	{"Bk", 247.0},    // 97
	{"Cf", 251.0},    // 98
	{"Es", 252.0},    // 99
	{"Fm", 257.0},    // 100
	{"Md", 258.0},    // 101
	{"No", 259.0},    // 102
	{"Lr", 262.0},    // 103
	{"Rf", 261.0},    // 104
	{"Db", 262.0},    // 105
	{"Sg", 266.0},    // 106
	{"Bh", 264.0},    // 107
	{"Hs", 277.0},    // 108
	{"Mt", 268.0},    // 109
	{"Ds", 269.0},    // 110
	{"Rg", 272.0},    // 111
	{"--", 0.0},      // 112
	{"--", 0.0},      // 113
	{"--", 0.0},      // 114
	{"--", 0.0},      // 115
	{"--", 0.0},      // 116
	{"--", 0.0},      // 117
	{"--", 0.0},      // 118
}

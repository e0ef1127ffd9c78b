package geo

// BuiltinWorld returns a coarse built-in coastline so the program renders a
// recognizable globe with no external map file. Shapes are hand-simplified
// to a handful of vertices per landmass; at braille resolution on a typical
// terminal this is indistinguishable from a proper low-zoom coastline.
// Loops carry an explicit closing vertex since polylines are drawn as given.
func BuiltinWorld() World {
	w := World{
		Lines: [][][2]float64{
			northAmerica,
			southAmerica,
			greenland,
			africa,
			eurasia,
			australia,
			britain,
			japan,
			madagascar,
			newZealand,
			sumatraJava,
			borneo,
			newGuinea,
		},
		BBox: WorldBBox,
	}
	return w
}

var northAmerica = [][2]float64{
	{-168, 65}, {-165, 60}, {-155, 58}, {-150, 61}, {-140, 60}, {-130, 55},
	{-125, 49}, {-124, 40}, {-117, 32}, {-110, 24}, {-105, 20}, {-97, 16},
	{-94, 16}, {-90, 14}, {-83, 9}, {-81, 25}, {-80, 32}, {-76, 35},
	{-70, 42}, {-66, 45}, {-60, 47}, {-65, 50}, {-70, 58}, {-78, 62},
	{-85, 66}, {-95, 68}, {-110, 68}, {-125, 70}, {-140, 70}, {-155, 71},
	{-162, 66}, {-168, 65},
}

var southAmerica = [][2]float64{
	{-77, 8}, {-79, 1}, {-81, -6}, {-76, -14}, {-70, -18}, {-71, -30},
	{-73, -40}, {-74, -50}, {-68, -55}, {-65, -42}, {-62, -39}, {-57, -36},
	{-48, -28}, {-40, -22}, {-35, -9}, {-35, -5}, {-44, -2}, {-50, 0},
	{-52, 4}, {-61, 8}, {-64, 10}, {-72, 12}, {-77, 8},
}

var greenland = [][2]float64{
	{-45, 60}, {-53, 65}, {-55, 70}, {-58, 75}, {-50, 80}, {-40, 83},
	{-25, 82}, {-20, 78}, {-22, 70}, {-30, 65}, {-40, 61}, {-45, 60},
}

var africa = [][2]float64{
	{10, 37}, {0, 36}, {-6, 35}, {-10, 31}, {-17, 21}, {-17, 15},
	{-13, 9}, {-8, 5}, {4, 6}, {9, 4}, {9, -2}, {13, -12},
	{14, -23}, {18, -34}, {27, -33}, {33, -26}, {40, -15}, {39, -7},
	{41, -2}, {48, 5}, {51, 11}, {43, 12}, {37, 18}, {34, 28},
	{32, 31}, {25, 32}, {15, 32}, {10, 34}, {10, 37},
}

var eurasia = [][2]float64{
	{-9, 43}, {-9, 37}, {-5, 36}, {3, 42}, {7, 44}, {10, 44},
	{14, 42}, {19, 40}, {21, 38}, {26, 36}, {30, 36}, {36, 36},
	{35, 33}, {34, 31}, {35, 28}, {38, 22}, {42, 15}, {44, 12},
	{54, 17}, {59, 23}, {56, 27}, {50, 30}, {56, 27}, {61, 25},
	{66, 25}, {68, 23}, {72, 19}, {76, 12}, {77, 8}, {80, 13},
	{84, 18}, {88, 22}, {91, 22}, {94, 16}, {98, 10}, {103, 1},
	{105, 9}, {109, 13}, {106, 21}, {110, 21}, {114, 22}, {120, 26},
	{122, 31}, {118, 38}, {122, 37}, {124, 40}, {126, 35}, {130, 38},
	{132, 43}, {137, 50}, {141, 53}, {143, 59}, {153, 59}, {156, 51},
	{162, 56}, {163, 60}, {170, 60}, {178, 65}, {170, 69}, {160, 70},
	{140, 72}, {120, 73}, {110, 76}, {90, 75}, {75, 72}, {60, 69},
	{48, 68}, {40, 66}, {30, 70}, {25, 71}, {18, 69}, {12, 65},
	{5, 62}, {5, 58}, {8, 57}, {8, 54}, {4, 52}, {0, 49},
	{-4, 48}, {-1, 45}, {-9, 43},
}

var australia = [][2]float64{
	{114, -22}, {114, -34}, {118, -35}, {124, -33}, {132, -32}, {140, -38},
	{147, -38}, {150, -37}, {153, -28}, {149, -20}, {143, -14}, {142, -11},
	{136, -12}, {131, -12}, {126, -14}, {122, -18}, {114, -22},
}

var britain = [][2]float64{
	{-5, 50}, {-4, 53}, {-6, 56}, {-5, 58}, {-3, 58}, {0, 53},
	{1, 51}, {-5, 50},
}

var japan = [][2]float64{
	{130, 31}, {131, 33}, {134, 34}, {137, 35}, {140, 36}, {141, 39},
	{141, 42}, {143, 43}, {145, 44},
}

var madagascar = [][2]float64{
	{44, -12}, {50, -16}, {47, -25}, {44, -25}, {43, -16}, {44, -12},
}

var newZealand = [][2]float64{
	{173, -35}, {175, -37}, {176, -39}, {174, -41}, {172, -43}, {168, -46},
}

var sumatraJava = [][2]float64{
	{95, 5}, {99, 2}, {102, -3}, {106, -6}, {110, -7}, {114, -8},
}

var borneo = [][2]float64{
	{109, 1}, {114, 5}, {117, 7}, {119, 1}, {116, -3}, {110, -2}, {109, 1},
}

var newGuinea = [][2]float64{
	{131, -1}, {135, -3}, {140, -5}, {146, -7}, {150, -10},
}

package grammar

// C99 tables emitted by the SLK parser generator for the Strong-LL(k) C grammar.
// Rows overlap (comb compression), so a nonzero cell is not proof that the
// cell belongs to the row being read; callers check the production LHS.

const (
	c99EndOfInput    Symbol = 88
	c99StartSymbol   Symbol = 89
	c99StartAction   Symbol = 227
	c99EndAction     Symbol = 231
	c99StartConflict Entry  = 320
	c99EndConflict   Entry  = 348
)

var c99Production = []int{
	0, 4, 89, 211, 90, 227, 3, 90, 211, 90, 1, 90, 2, 91, 1, 2,
	91, 2, 2, 91, 3, 4, 91, 4, 124, 5, 3, 92, 91, 93, 5, 93,
	6, 124, 7, 93, 4, 93, 4, 5, 93, 5, 93, 4, 94, 5, 93, 4,
	93, 8, 1, 93, 4, 93, 9, 1, 93, 3, 93, 10, 93, 3, 93, 11,
	93, 1, 93, 3, 94, 121, 95, 4, 95, 12, 121, 95, 1, 95, 2, 96,
	92, 3, 96, 10, 96, 3, 96, 11, 96, 3, 96, 97, 98, 3, 96, 13,
	96, 5, 96, 13, 4, 183, 5, 2, 97, 14, 2, 97, 15, 2, 97, 16,
	2, 97, 17, 2, 97, 18, 2, 97, 19, 2, 98, 96, 5, 98, 4, 183,
	5, 98, 3, 99, 98, 100, 4, 100, 15, 98, 100, 4, 100, 20, 98, 100,
	4, 100, 21, 98, 100, 1, 100, 3, 101, 99, 102, 4, 102, 16, 99, 102,
	4, 102, 17, 99, 102, 1, 102, 3, 103, 101, 104, 4, 104, 22, 101, 104,
	4, 104, 23, 101, 104, 1, 104, 3, 105, 103, 106, 4, 106, 24, 103, 106,
	4, 106, 25, 103, 106, 4, 106, 26, 103, 106, 4, 106, 27, 103, 106, 1,
	106, 3, 107, 105, 108, 4, 108, 28, 105, 108, 4, 108, 29, 105, 108, 1,
	108, 3, 109, 107, 110, 4, 110, 14, 107, 110, 1, 110, 3, 111, 109, 112,
	4, 112, 30, 109, 112, 1, 112, 3, 113, 111, 114, 4, 114, 31, 111, 114,
	1, 114, 3, 115, 113, 116, 4, 116, 32, 113, 116, 1, 116, 3, 117, 115,
	118, 4, 118, 33, 115, 118, 1, 118, 3, 119, 117, 120, 1, 120, 5, 120,
	34, 124, 35, 119, 3, 121, 96, 122, 16, 121, 4, 183, 5, 98, 100, 102,
	104, 106, 108, 110, 112, 114, 116, 118, 120, 12, 122, 100, 102, 104, 106, 108,
	110, 112, 114, 116, 118, 120, 3, 122, 123, 121, 2, 123, 36, 2, 123, 37,
	2, 123, 38, 2, 123, 39, 2, 123, 40, 2, 123, 41, 2, 123, 42, 2,
	123, 43, 2, 123, 44, 2, 123, 45, 2, 123, 46, 3, 124, 121, 125, 4,
	125, 12, 121, 125, 1, 125, 2, 126, 119, 4, 127, 128, 217, 47, 5, 127,
	48, 128, 218, 47, 3, 128, 161, 129, 3, 128, 160, 130, 3, 128, 139, 131,
	3, 128, 138, 132, 1, 129, 2, 129, 128, 1, 130, 2, 130, 128, 1, 131,
	2, 131, 128, 1, 132, 2, 132, 128, 3, 133, 136, 134, 4, 134, 12, 136,
	134, 1, 134, 4, 135, 136, 228, 219, 3, 136, 162, 137, 1, 137, 3, 137,
	36, 189, 2, 138, 49, 2, 138, 50, 2, 138, 51, 2, 138, 52, 2, 139,
	53, 2, 139, 54, 2, 139, 55, 2, 139, 56, 2, 139, 57, 2, 139, 58,
	2, 139, 59, 2, 139, 60, 2, 139, 61, 2, 139, 62, 2, 139, 63, 2,
	139, 64, 2, 139, 140, 2, 139, 152, 2, 139, 65, 6, 140, 141, 1, 66,
	142, 67, 5, 140, 141, 66, 142, 67, 3, 140, 141, 1, 2, 141, 68, 2,
	141, 69, 3, 142, 144, 143, 3, 143, 144, 143, 1, 143, 4, 144, 145, 148,
	47, 3, 145, 160, 146, 3, 145, 139, 147, 2, 146, 145, 1, 146, 2, 147,
	145, 1, 147, 3, 148, 150, 149, 4, 149, 12, 150, 149, 1, 149, 3, 150,
	162, 151, 3, 150, 35, 126, 1, 151, 3, 151, 35, 126, 3, 152, 70, 153,
	3, 153, 1, 154, 4, 153, 66, 157, 156, 4, 154, 66, 157, 155, 1, 154,
	2, 155, 67, 3, 155, 12, 67, 2, 156, 67, 3, 156, 12, 67, 3, 157,
	159, 158, 4, 158, 12, 159, 158, 1, 158, 2, 159, 1, 4, 159, 1, 36,
	126, 2, 160, 71, 2, 160, 72, 2, 160, 73, 2, 161, 74, 3, 162, 168,
	163, 2, 162, 163, 3, 163, 1, 164, 5, 163, 4, 162, 5, 164, 3, 164,
	4, 165, 3, 164, 6, 166, 7, 164, 229, 4, 173, 230, 5, 164, 1, 164,
	4, 165, 181, 5, 164, 3, 165, 5, 164, 3, 166, 171, 167, 4, 166, 121,
	7, 164, 6, 166, 50, 171, 121, 7, 164, 4, 166, 15, 7, 164, 3, 166,
	7, 164, 4, 167, 121, 7, 164, 3, 167, 7, 164, 5, 167, 50, 121, 7,
	164, 4, 167, 15, 7, 164, 3, 168, 15, 169, 3, 169, 171, 170, 2, 169,
	170, 1, 170, 2, 170, 168, 3, 171, 160, 172, 3, 172, 160, 172, 1, 172,
	3, 173, 175, 174, 1, 174, 3, 174, 12, 75, 3, 175, 177, 176, 4, 176,
	12, 177, 176, 1, 176, 3, 177, 128, 220, 2, 178, 179, 3, 178, 168, 221,
	3, 179, 1, 180, 5, 179, 4, 178, 5, 180, 5, 179, 6, 222, 7, 180,
	5, 179, 4, 223, 5, 180, 5, 180, 6, 224, 7, 180, 5, 180, 4, 173,
	5, 180, 5, 180, 4, 225, 5, 180, 1, 180, 3, 181, 1, 182, 4, 182,
	12, 1, 182, 1, 182, 3, 183, 145, 184, 1, 184, 2, 184, 185, 3, 185,
	168, 186, 2, 185, 187, 1, 186, 2, 186, 187, 5, 187, 4, 185, 5, 188,
	4, 187, 6, 7, 188, 5, 187, 6, 121, 7, 188, 5, 187, 6, 15, 7,
	188, 4, 187, 4, 5, 188, 5, 187, 4, 173, 5, 188, 4, 188, 6, 7,
	188, 5, 188, 6, 121, 7, 188, 5, 188, 6, 15, 7, 188, 4, 188, 4,
	5, 188, 5, 188, 4, 173, 5, 188, 4, 189, 66, 191, 190, 2, 189, 121,
	2, 190, 67, 3, 190, 12, 67, 3, 191, 189, 192, 4, 191, 193, 189, 192,
	4, 192, 12, 189, 192, 5, 192, 12, 193, 189, 192, 1, 192, 3, 193, 194,
	36, 3, 194, 196, 195, 3, 195, 196, 195, 1, 195, 4, 196, 6, 126, 7,
	3, 196, 8, 1, 2, 197, 198, 2, 197, 199, 2, 197, 203, 2, 197, 204,
	2, 197, 206, 2, 197, 210, 4, 198, 1, 35, 197, 5, 198, 76, 126, 35,
	197, 4, 198, 77, 35, 197, 5, 199, 229, 66, 230, 67, 6, 199, 229, 66,
	200, 230, 67, 3, 200, 202, 201, 3, 201, 202, 201, 1, 201, 2, 202, 127,
	2, 202, 197, 2, 203, 47, 3, 203, 124, 47, 7, 204, 78, 4, 124, 5,
	197, 205, 6, 204, 79, 4, 124, 5, 197, 3, 205, 80, 197, 1, 205, 4,
	206, 81, 4, 207, 6, 206, 82, 4, 124, 5, 197, 8, 206, 83, 197, 82,
	4, 124, 5, 47, 4, 207, 127, 203, 208, 4, 207, 203, 203, 209, 3, 208,
	5, 197, 4, 208, 124, 5, 197, 3, 209, 5, 197, 4, 209, 124, 5, 197,
	4, 210, 84, 1, 47, 3, 210, 85, 47, 3, 210, 86, 47, 3, 210, 87,
	47, 4, 210, 87, 124, 47, 3, 211, 128, 212, 5, 211, 48, 128, 226, 47,
	3, 212, 162, 213, 2, 212, 47, 2, 213, 214, 4, 213, 137, 134, 47, 3,
	214, 215, 199, 2, 214, 199, 3, 215, 127, 216, 3, 216, 127, 216, 2, 217,
	133, 1, 217, 2, 218, 135, 1, 218, 5, 219, 12, 136, 228, 219, 1, 219,
	2, 220, 178, 1, 220, 2, 221, 179, 1, 221, 2, 222, 126, 1, 222, 2,
	223, 173, 1, 223, 2, 224, 126, 1, 224, 2, 225, 181, 1, 225, 2, 226,
	135, 1, 226, 0,
}

var c99ProductionRow = []int{
	0, 1, 6, 10, 12, 15, 18, 21, 26, 30, 36, 41, 47, 52, 57, 61,
	65, 67, 71, 76, 78, 81, 85, 89, 93, 97, 103, 106, 109, 112, 115, 118,
	121, 124, 130, 134, 139, 144, 149, 151, 155, 160, 165, 167, 171, 176, 181, 183,
	187, 192, 197, 202, 207, 209, 213, 218, 223, 225, 229, 234, 236, 240, 245, 247,
	251, 256, 258, 262, 267, 269, 273, 278, 280, 284, 286, 292, 296, 313, 326, 330,
	333, 336, 339, 342, 345, 348, 351, 354, 357, 360, 363, 367, 372, 374, 377, 382,
	388, 392, 396, 400, 404, 406, 409, 411, 414, 416, 419, 421, 424, 428, 433, 435,
	440, 444, 446, 450, 453, 456, 459, 462, 465, 468, 471, 474, 477, 480, 483, 486,
	489, 492, 495, 498, 501, 504, 507, 514, 520, 524, 527, 530, 534, 538, 540, 545,
	549, 553, 556, 558, 561, 563, 567, 572, 574, 578, 582, 584, 588, 592, 596, 601,
	606, 608, 611, 615, 618, 622, 626, 631, 633, 636, 641, 644, 647, 650, 653, 657,
	660, 664, 670, 674, 678, 686, 688, 693, 697, 701, 706, 713, 718, 722, 727, 731,
	737, 742, 746, 750, 753, 755, 758, 762, 766, 768, 772, 774, 778, 782, 787, 789,
	793, 796, 800, 804, 810, 816, 822, 828, 834, 840, 842, 846, 851, 853, 857, 859,
	862, 866, 869, 871, 874, 880, 885, 891, 897, 902, 908, 913, 919, 925, 930, 936,
	941, 944, 947, 951, 955, 960, 965, 971, 973, 977, 981, 985, 987, 992, 996, 999,
	1002, 1005, 1008, 1011, 1014, 1019, 1025, 1030, 1036, 1043, 1047, 1051, 1053, 1056, 1059, 1062,
	1066, 1074, 1081, 1085, 1087, 1092, 1099, 1108, 1113, 1118, 1122, 1127, 1131, 1136, 1141, 1145,
	1149, 1153, 1158, 1162, 1168, 1172, 1175, 1178, 1183, 1187, 1190, 1194, 1198, 1201, 1203, 1206,
	1208, 1214, 1216, 1219, 1221, 1224, 1226, 1229, 1231, 1234, 1236, 1239, 1241, 1244, 1246, 1249,
	0,
}

var c99Parse = []int{
	0, 0, 275, 275, 275, 275, 4, 5, 6, 7, 176, 275, 275, 177, 275, 275,
	275, 275, 275, 275, 275, 26, 27, 28, 29, 30, 31, 19, 243, 243, 243, 243,
	182, 244, 18, 244, 183, 243, 243, 165, 243, 243, 243, 243, 243, 243, 243, 327,
	275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275,
	275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 275, 156, 275, 275, 275,
	275, 274, 275, 275, 275, 275, 275, 275, 275, 266, 266, 266, 266, 243, 8, 8,
	8, 8, 266, 266, 173, 266, 266, 266, 266, 266, 266, 266, 296, 296, 296, 296,
	296, 296, 296, 296, 296, 296, 296, 296, 296, 296, 296, 296, 296, 296, 297, 193,
	296, 296, 296, 296, 296, 296, 296, 266, 266, 266, 266, 266, 266, 266, 266, 266,
	266, 266, 266, 266, 266, 266, 266, 266, 266, 266, 266, 267, 266, 266, 266, 266,
	266, 266, 266, 218, 266, 266, 266, 266, 340, 266, 266, 266, 266, 266, 266, 266,
	265, 265, 265, 265, 115, 116, 117, 118, 0, 265, 265, 162, 265, 265, 265, 265,
	265, 265, 265, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 325, 324, 1, 1, 1, 1, 1, 1, 1, 265, 265,
	265, 265, 265, 265, 265, 265, 265, 265, 265, 265, 265, 265, 265, 265, 265, 265,
	265, 265, 161, 265, 265, 265, 265, 265, 265, 265, 0, 265, 265, 265, 265, 0,
	265, 265, 265, 265, 265, 265, 265, 269, 269, 269, 269, 285, 286, 287, 342, 0,
	269, 269, 0, 269, 269, 269, 269, 269, 269, 269, 95, 94, 94, 94, 94, 94,
	94, 94, 94, 94, 94, 94, 94, 94, 94, 94, 94, 94, 137, 138, 94, 94,
	94, 94, 94, 94, 94, 269, 268, 268, 268, 268, 268, 268, 268, 268, 268, 268,
	268, 268, 268, 268, 268, 268, 268, 268, 269, 109, 268, 268, 268, 268, 268, 268,
	268, 157, 269, 269, 269, 269, 0, 269, 269, 269, 269, 269, 269, 269, 320, 16,
	9, 16, 12, 13, 14, 15, 16, 0, 16, 16, 16, 16, 110, 0, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 280, 280, 280, 280, 170, 171,
	172, 0, 158, 280, 280, 164, 280, 280, 280, 280, 280, 280, 280, 16, 99, 99,
	99, 99, 98, 98, 98, 98, 98, 98, 98, 98, 98, 98, 98, 98, 98, 272,
	273, 98, 98, 98, 97, 97, 97, 96, 280, 279, 279, 279, 279, 279, 279, 279,
	279, 279, 279, 279, 279, 279, 279, 279, 279, 279, 279, 0, 163, 279, 279, 279,
	279, 279, 279, 279, 77, 326, 77, 223, 222, 223, 202, 77, 242, 77, 77, 77,
	77, 203, 223, 77, 77, 77, 77, 77, 77, 77, 77, 77, 77, 77, 77, 77,
	77, 77, 77, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 77, 160,
	0, 316, 160, 160, 160, 317, 333, 217, 214, 335, 160, 334, 167, 160, 217, 198,
	198, 198, 77, 241, 140, 140, 140, 140, 140, 140, 140, 140, 140, 140, 140, 140,
	140, 160, 141, 140, 140, 140, 140, 140, 140, 210, 0, 0, 332, 160, 212, 160,
	160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160, 160,
	159, 0, 160, 160, 160, 160, 160, 160, 160, 328, 181, 179, 282, 282, 282, 282,
	281, 181, 227, 226, 227, 282, 282, 0, 282, 282, 282, 282, 282, 282, 282, 0,
	108, 111, 100, 108, 111, 100, 100, 100, 181, 181, 250, 0, 250, 100, 108, 111,
	100, 276, 277, 278, 181, 181, 181, 181, 181, 181, 181, 181, 181, 181, 181, 181,
	181, 181, 181, 181, 181, 181, 181, 181, 251, 181, 181, 181, 181, 181, 181, 181,
	100, 0, 101, 101, 101, 101, 101, 101, 101, 101, 101, 101, 101, 101, 101, 101,
	101, 101, 101, 0, 0, 101, 101, 101, 101, 101, 101, 101, 102, 113, 150, 102,
	102, 102, 284, 284, 284, 284, 283, 102, 154, 0, 102, 284, 284, 0, 284, 284,
	284, 284, 284, 284, 284, 114, 112, 175, 104, 112, 175, 104, 104, 104, 260, 155,
	113, 151, 206, 104, 112, 174, 104, 0, 0, 331, 102, 154, 103, 103, 103, 103,
	103, 103, 103, 103, 103, 103, 103, 103, 103, 103, 103, 103, 103, 0, 0, 103,
	103, 103, 103, 103, 103, 103, 104, 0, 105, 105, 105, 105, 105, 105, 105, 105,
	105, 105, 105, 105, 105, 105, 105, 105, 105, 0, 338, 105, 105, 105, 105, 105,
	105, 105, 106, 0, 220, 106, 106, 106, 0, 261, 262, 219, 337, 106, 336, 0,
	106, 201, 201, 201, 201, 201, 201, 201, 201, 201, 201, 201, 201, 201, 201, 201,
	201, 201, 0, 0, 201, 201, 201, 201, 201, 201, 201, 295, 248, 249, 248, 249,
	106, 247, 107, 107, 107, 107, 107, 107, 107, 107, 107, 107, 107, 107, 107, 107,
	107, 107, 107, 295, 0, 107, 107, 107, 107, 107, 107, 107, 0, 0, 295, 294,
	294, 294, 294, 294, 294, 294, 294, 294, 294, 294, 294, 294, 294, 294, 294, 294,
	294, 294, 304, 294, 294, 294, 294, 294, 294, 294, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 2, 2,
	2, 2, 2, 2, 2, 305, 0, 339, 256, 256, 256, 252, 0, 253, 0, 0,
	256, 256, 3, 256, 256, 256, 256, 256, 256, 256, 79, 80, 81, 82, 83, 84,
	85, 86, 87, 88, 89, 0, 0, 38, 0, 38, 0, 0, 0, 0, 38, 0,
	38, 35, 38, 38, 0, 256, 36, 37, 38, 38, 38, 38, 38, 38, 38, 38,
	38, 38, 38, 38, 38, 38, 0, 0, 255, 0, 0, 308, 0, 0, 308, 309,
	308, 38, 254, 254, 257, 257, 309, 258, 258, 258, 259, 259, 259, 259, 146, 0,
	0, 146, 146, 146, 0, 38, 240, 240, 240, 240, 0, 149, 146, 0, 149, 240,
	240, 0, 240, 240, 240, 240, 240, 240, 240, 149, 208, 0, 0, 208, 148, 208,
	146, 148, 148, 148, 225, 0, 225, 0, 209, 0, 0, 0, 148, 149, 0, 224,
	0, 0, 145, 145, 145, 145, 145, 145, 145, 145, 145, 145, 145, 145, 145, 0,
	148, 145, 145, 145, 145, 145, 145, 239, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 0,
	0, 147, 147, 147, 147, 147, 147, 291, 290, 290, 290, 290, 290, 290, 290, 290,
	290, 290, 290, 290, 290, 290, 290, 290, 290, 0, 0, 290, 290, 290, 290, 290,
	290, 290, 298, 298, 298, 298, 298, 298, 298, 298, 298, 298, 298, 298, 298, 298,
	298, 298, 298, 298, 313, 0, 298, 298, 298, 298, 298, 298, 298, 299, 299, 299,
	299, 299, 299, 299, 299, 299, 299, 299, 299, 299, 299, 299, 299, 299, 299, 0,
	0, 299, 299, 299, 299, 299, 299, 299, 0, 0, 0, 0, 0, 0, 0, 0,
	312, 312, 312, 312, 312, 312, 312, 312, 312, 312, 312, 312, 312, 312, 312, 312,
	312, 0, 0, 312, 312, 312, 312, 312, 312, 312, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 0, 0, 204, 204, 204,
	204, 204, 204, 204, 207, 207, 207, 207, 207, 207, 207, 207, 207, 207, 207, 207,
	207, 207, 207, 207, 207, 0, 0, 207, 207, 207, 207, 207, 207, 207, 42, 0,
	42, 0, 0, 0, 0, 42, 0, 42, 0, 40, 41, 0, 0, 0, 0, 42,
	42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 0, 0, 0,
	200, 200, 200, 200, 200, 200, 200, 0, 42, 200, 200, 200, 200, 200, 200, 200,
	200, 200, 200, 0, 196, 0, 0, 196, 196, 196, 0, 292, 42, 0, 292, 196,
	0, 46, 197, 46, 92, 0, 92, 0, 46, 292, 46, 91, 0, 0, 0, 0,
	0, 200, 44, 45, 46, 46, 46, 46, 46, 46, 46, 46, 46, 46, 46, 46,
	0, 0, 92, 0, 0, 0, 199, 199, 199, 293, 0, 46, 0, 0, 92, 0,
	0, 139, 139, 139, 139, 139, 139, 139, 139, 139, 139, 139, 139, 139, 0, 46,
	139, 139, 139, 139, 139, 139, 142, 142, 142, 142, 142, 142, 142, 142, 142, 142,
	142, 142, 142, 0, 0, 142, 142, 142, 142, 142, 142, 144, 144, 144, 144, 144,
	144, 144, 144, 144, 144, 144, 144, 144, 0, 0, 144, 144, 144, 143, 143, 143,
	221, 221, 221, 221, 221, 221, 221, 221, 221, 221, 221, 221, 221, 0, 0, 221,
	221, 221, 221, 221, 221, 52, 306, 52, 0, 306, 307, 306, 52, 0, 52, 0,
	0, 307, 0, 0, 306, 0, 0, 0, 48, 49, 50, 51, 52, 52, 52, 52,
	52, 52, 52, 52, 185, 185, 185, 185, 0, 0, 188, 0, 0, 185, 185, 52,
	185, 185, 329, 185, 185, 185, 185, 152, 300, 0, 152, 300, 0, 0, 0, 0,
	0, 0, 0, 52, 0, 152, 300, 119, 120, 121, 122, 123, 124, 125, 126, 127,
	128, 129, 130, 133, 0, 186, 131, 131, 132, 153, 0, 302, 0, 0, 302, 0,
	0, 0, 0, 0, 318, 0, 301, 318, 0, 302, 184, 184, 184, 189, 189, 189,
	189, 0, 318, 190, 0, 0, 189, 189, 0, 189, 189, 330, 189, 189, 189, 189,
	0, 0, 0, 0, 0, 0, 0, 0, 56, 303, 56, 271, 271, 271, 271, 56,
	0, 56, 319, 0, 271, 271, 0, 271, 271, 271, 271, 271, 271, 271, 191, 54,
	55, 56, 56, 56, 56, 56, 56, 0, 0, 0, 0, 0, 0, 0, 310, 310,
	310, 310, 56, 0, 311, 0, 0, 310, 310, 270, 310, 310, 310, 310, 310, 310,
	310, 314, 314, 314, 314, 0, 56, 315, 0, 0, 314, 314, 0, 314, 314, 314,
	314, 314, 314, 314, 17, 17, 17, 17, 0, 0, 0, 0, 0, 17, 17, 0,
	17, 17, 17, 17, 17, 17, 17, 20, 20, 20, 20, 0, 0, 0, 0, 0,
	21, 22, 0, 321, 23, 23, 23, 23, 23, 23, 32, 32, 32, 322, 0, 0,
	0, 0, 0, 32, 32, 0, 32, 32, 32, 32, 32, 32, 32, 34, 34, 34,
	34, 0, 0, 0, 0, 0, 34, 34, 0, 34, 34, 34, 34, 34, 34, 34,
	39, 39, 39, 39, 0, 0, 0, 0, 0, 39, 39, 0, 39, 39, 39, 39,
	39, 39, 39, 43, 43, 43, 43, 0, 0, 0, 0, 0, 43, 43, 0, 43,
	43, 43, 43, 43, 43, 43, 47, 47, 47, 47, 0, 0, 0, 0, 0, 47,
	47, 0, 47, 47, 47, 47, 47, 47, 47, 53, 53, 53, 53, 0, 0, 0,
	0, 0, 53, 53, 0, 53, 53, 53, 53, 53, 53, 53, 57, 57, 57, 57,
	0, 0, 0, 0, 0, 57, 57, 0, 57, 57, 57, 57, 57, 57, 57, 60,
	60, 60, 60, 0, 0, 0, 0, 0, 60, 60, 0, 60, 60, 60, 60, 60,
	60, 60, 63, 63, 63, 63, 0, 0, 0, 0, 0, 63, 63, 0, 63, 63,
	63, 63, 63, 63, 63, 66, 66, 66, 66, 0, 0, 0, 0, 0, 66, 66,
	0, 66, 66, 66, 66, 66, 66, 66, 69, 69, 69, 69, 0, 0, 0, 0,
	0, 69, 69, 0, 69, 69, 69, 69, 69, 69, 69, 72, 72, 72, 72, 0,
	0, 0, 0, 0, 72, 72, 0, 72, 72, 72, 72, 72, 72, 72, 75, 75,
	75, 323, 0, 0, 0, 0, 0, 75, 75, 0, 75, 75, 75, 75, 75, 75,
	75, 90, 90, 90, 90, 0, 0, 0, 0, 0, 90, 90, 0, 90, 90, 90,
	90, 90, 90, 90, 93, 93, 93, 93, 0, 0, 0, 0, 0, 93, 93, 0,
	93, 93, 93, 93, 93, 93, 93, 59, 0, 59, 0, 0, 0, 62, 59, 62,
	58, 0, 0, 0, 62, 0, 0, 0, 65, 0, 65, 0, 0, 0, 0, 65,
	59, 59, 59, 59, 59, 59, 61, 62, 62, 62, 62, 62, 0, 0, 0, 0,
	0, 59, 64, 65, 65, 65, 65, 62, 0, 0, 0, 0, 68, 0, 68, 71,
	0, 71, 65, 68, 195, 59, 71, 195, 195, 195, 73, 62, 73, 0, 0, 195,
	0, 73, 195, 0, 0, 0, 65, 67, 68, 68, 68, 70, 71, 71, 0, 0,
	0, 0, 0, 0, 0, 0, 68, 74, 73, 71, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 73, 0, 0, 0, 0, 0, 68, 0, 0, 71, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 73, 0, 194, 194, 194, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var c99ParseRow = []int{
	0, 147, 842, 5, 93, 346, 1683, 22, 1702, 7, 1721, 1740, 946, 1759, 1273, 1778,
	1340, 1797, 1472, 1816, 1603, 1835, 2002, 1854, 2008, 1873, 2019, 1892, 2055, 1911, 2058, 1930,
	2069, 1949, 463, 902, 1968, 1343, 1987, 234, 365, 609, 683, 711, 785, 607, 317, 608,
	709, 673, 131, 1490, 145, 232, 1340, 479, 1361, 1382, 1005, 1037, 1018, 674, 1526, 684,
	6, 336, 510, 175, 393, 38, 457, 46, 327, 26, 710, 9, 581, 31, 1507, 1580,
	112, 2067, 1331, 456, 1311, 752, 469, 1177, 717, 1203, 1033, 552, 514, 162, 783, 1403,
	467, 1040, 590, 517, 792, 1013, 464, 27, 766, 822, 823, 612, 917, 918, 717, 102,
	175, 88, 262, 1610, 353, 1, 544, 393, 587, 689, 183, 1063, 1338, 815, 60, 1090,
	1117, 1527, 1562, 870, 1477, 986, 1645, 1151, 1664, 512, 1571, 0,
}

var c99Conflict = []int{
	0, 0, 11, 11, 11, 11, 10, 344, 0, 0, 0, 11, 11, 0, 11, 11,
	11, 11, 11, 11, 11, 24, 24, 24, 343, 166, 0, 168, 0, 0, 24, 24,
	0, 24, 24, 24, 24, 24, 24, 24, 32, 32, 32, 32, 0, 0, 0, 0,
	0, 32, 32, 169, 32, 32, 32, 32, 32, 32, 32, 0, 0, 75, 75, 75,
	75, 0, 0, 0, 0, 0, 75, 75, 135, 75, 75, 75, 75, 75, 75, 75,
	0, 0, 168, 0, 0, 0, 178, 0, 0, 0, 178, 167, 33, 33, 33, 33,
	33, 33, 33, 33, 33, 33, 33, 33, 33, 345, 0, 33, 33, 33, 33, 33,
	33, 76, 76, 76, 76, 76, 76, 76, 76, 76, 76, 76, 76, 76, 0, 0,
	76, 76, 76, 76, 76, 76, 180, 180, 180, 180, 180, 180, 180, 180, 180, 180,
	180, 180, 180, 180, 180, 180, 180, 0, 0, 180, 180, 180, 180, 180, 180, 180,
	0, 0, 185, 185, 185, 185, 0, 0, 187, 0, 135, 185, 185, 0, 185, 185,
	185, 185, 185, 185, 185, 189, 189, 189, 189, 0, 0, 192, 0, 0, 189, 189,
	0, 189, 189, 189, 189, 189, 189, 189, 205, 205, 205, 205, 205, 205, 205, 205,
	205, 205, 205, 205, 205, 205, 205, 205, 205, 0, 0, 205, 205, 205, 205, 205,
	205, 205, 206, 211, 0, 0, 211, 213, 211, 230, 230, 230, 230, 0, 0, 229,
	0, 211, 230, 230, 0, 230, 230, 346, 230, 230, 230, 230, 0, 216, 0, 0,
	0, 216, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 213, 213, 213, 213, 213, 213, 213, 213, 213, 213, 213, 213, 213,
	213, 213, 213, 213, 0, 0, 213, 213, 213, 213, 213, 213, 213, 215, 215, 215,
	215, 215, 215, 215, 215, 215, 215, 215, 215, 215, 215, 215, 215, 215, 0, 0,
	215, 215, 215, 215, 215, 215, 215, 228, 232, 228, 235, 235, 235, 235, 0, 0,
	234, 0, 228, 235, 235, 0, 235, 235, 347, 235, 235, 235, 235, 245, 245, 245,
	245, 0, 246, 0, 246, 0, 245, 245, 0, 245, 245, 245, 245, 245, 245, 245,
	0, 0, 0, 0, 233, 233, 233, 233, 233, 233, 233, 233, 233, 233, 233, 233,
	233, 233, 233, 233, 233, 0, 0, 233, 233, 233, 233, 233, 233, 233, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 245, 247,
	0, 256, 237, 256, 0, 256, 256, 256, 256, 256, 0, 256, 256, 256, 256, 0,
	0, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256,
	254, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 256, 0, 238, 238,
	238, 238, 238, 238, 238, 238, 238, 238, 238, 238, 238, 238, 238, 238, 238, 0,
	0, 238, 238, 238, 238, 238, 238, 238, 264, 264, 264, 264, 0, 0, 0, 0,
	0, 264, 264, 0, 264, 264, 264, 264, 264, 264, 264, 230, 230, 230, 230, 0,
	0, 231, 0, 0, 230, 230, 0, 230, 230, 230, 230, 230, 230, 230, 0, 0,
	0, 0, 0, 0, 0, 0, 264, 264, 264, 264, 264, 264, 264, 264, 264, 264,
	264, 264, 264, 264, 264, 264, 264, 264, 264, 264, 263, 264, 264, 264, 264, 264,
	264, 264, 0, 264, 264, 264, 264, 0, 264, 264, 264, 264, 264, 264, 264, 289,
	289, 289, 289, 0, 0, 0, 0, 0, 289, 289, 0, 289, 289, 289, 289, 289,
	289, 289, 24, 24, 24, 24, 0, 0, 0, 0, 0, 24, 24, 0, 24, 24,
	24, 24, 24, 24, 24, 0, 0, 0, 0, 0, 0, 0, 0, 288, 0, 0,
	0, 136, 0, 0, 136, 136, 136, 0, 0, 0, 0, 0, 136, 0, 0, 136,
	0, 0, 0, 0, 0, 0, 25, 25, 25, 25, 25, 25, 25, 25, 25, 25,
	25, 25, 25, 136, 0, 25, 25, 25, 25, 25, 25, 0, 0, 0, 0, 136,
	0, 136, 136, 136, 136, 136, 136, 136, 136, 136, 136, 136, 136, 136, 136, 136,
	136, 136, 134, 0, 136, 136, 136, 136, 136, 136, 136, 235, 235, 235, 235, 0,
	0, 236, 0, 0, 235, 235, 0, 235, 235, 235, 235, 235, 235, 235,
}

var c99ConflictRow = []int{
	0, 1, 20, 39, 60, 6, 104, 24, 15, 85, 161, 180, 151, 226, 252, 232,
	323, 329, 413, 348, 413, 487, 1, 574, 593, 624, 624, 506, 698, 0,
}

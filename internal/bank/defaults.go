package bank

// DefaultRecords is the built-in fallback catalog used when no external
// question source is configured or the source cannot be read. The engine
// cannot tell the difference.
func DefaultRecords() []Record {
	return []Record{
		// level 1
		{1, "Which of these numbers is even?", "18", "15", "21"},
		{1, "Which shape has three sides?", "Triangle", "Square", "Circle"},
		{1, "Which number is larger?", "54", "45", "44"},
		{1, "Which shape is round?", "Circle", "Triangle", "Square"},
		{1, "Which number is odd?", "19", "20", "18"},
		{1, "How many sides does a square have?", "4", "3", "5"},
		{1, "Which shape has four equal sides?", "Square", "Rectangle", "Pentagon"},
		{1, "Which number is smaller?", "23", "32", "29"},
		{1, "Which number comes right before 50?", "49", "48", "51"},
		{1, "What is 5 + 3?", "8", "7", "9"},
		{1, "What is 10 - 4?", "6", "5", "7"},
		{1, "Which solid is shaped like a ball?", "Sphere", "Cube", "Pyramid"},

		// level 2
		{2, "Which unit measures time?", "Hour", "Meter", "Kilogram"},
		{2, "What is 7 x 8?", "56", "54", "58"},
		{2, "Which planet is closest to the Sun?", "Mercury", "Venus", "Mars"},
		{2, "How many minutes are in an hour?", "60", "50", "100"},
		{2, "Which fraction is larger: 1/2 or 1/4?", "1/2", "1/4", "They are equal"},
		{2, "What is 15 + 27?", "42", "41", "43"},
		{2, "Which animal is a mammal?", "Dolphin", "Shark", "Octopus"},
		{2, "How many sides does a hexagon have?", "6", "5", "8"},
		{2, "What is 9 x 6?", "54", "52", "56"},
		{2, "What is the capital of France?", "Paris", "London", "Madrid"},

		// level 3
		{3, "What is the square root of 144?", "12", "14", "11"},
		{3, "What is 25% of 200?", "50", "40", "25"},
		{3, "Which angle measures exactly 90 degrees?", "Right", "Acute", "Obtuse"},
		{3, "What is the area of a square with side 7?", "49", "28", "14"},
		{3, "What is 3 cubed?", "27", "9", "81"},
		{3, "Which number is prime?", "17", "15", "21"},
		{3, "What is the perimeter of a 5x3 rectangle?", "16", "15", "8"},
		{3, "What is 0.5 + 0.75?", "1.25", "1.20", "1.30"},
		{3, "What is 2 to the power of 5?", "32", "16", "64"},
		{3, "What is the GCD of 12 and 18?", "6", "3", "9"},
	}
}

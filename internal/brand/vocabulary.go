package brand

// Vocabulary lists known chain brands, with their common spellings and
// transliterations. Entries are normalized before matching, so spacing and
// case here are irrelevant.
var Vocabulary = []string{
	"스타벅스", "starbucks", "스벅", "리저브",
	"이디야", "ediya",
	"투썸", "twosome", "투썸플레이스",
	"할리스", "hollys", "hollyscoffee",
	"엔제리너스", "angelinus",
	"파스쿠찌", "pascucci",
	"커피빈", "coffeebean", "thecoffeebean",
	"빽다방", "paik", "paiks",
	"폴바셋", "paulbassett",
	"탐앤탐스", "tomntoms", "tomandtoms",
	"컴포즈", "컴포즈커피", "composecoffee", "compose",
	"드롭탑", "droptop",
	"요거프레소", "yogerpresso",
	"커피베이", "coffeebay",
	"더벤티", "venti",
	"매머드", "mammoth", "mammothcoffee",
	"공차", "gongcha",
	"메가커피", "megamgc", "megacoffee",
	"달콤", "dalkomm",
	"카페베네", "caffebene",
}

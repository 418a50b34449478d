package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// The long tail of the demo catalog is generated, not curated. Generation is
// seeded so product ids and prices are identical on every start: deep links
// into generated products survive restarts.
const generatorSeed = 20240315

const perCategoryCount = 30

var generatedOrigins = []string{"印尼", "越南", "文莱", "柬埔寨", "马来西亚", "海南", "达拉干", "马泥涝"}

var generatedAdjectives = []string{"顶级", "老料", "沉水", "入门", "珍藏", "古法", "野生", "特级", "百年", "极品"}

// nounsByCategory maps category names to typical product nouns.
var nounsByCategory = map[string][]string{
	"沉香原材": {"原木", "板头", "虫漏", "壳子", "碎料", "老料"},
	"香道线香": {"线香", "盘香", "塔香", "倒流香", "卧香"},
	"随身佩戴": {"手串", "念珠", "提珠", "随形手链", "雕件吊坠"},
	"顶级奇楠": {"白奇楠", "绿奇楠", "紫奇楠", "黑奇楠", "黄奇楠"},
	"精选香器": {"纯铜香炉", "陶瓷香炉", "博山炉", "香插", "香篆套装", "品香杯"},
	"沉香原油": {"精油", "纯油", "原液", "提炼油"},
}

func generateCategoryProducts(rng *rand.Rand, cat Category, startID int) []Product {
	nouns, ok := nounsByCategory[cat.Name]
	if !ok {
		nouns = []string{"沉香"}
	}
	var priceBase int64
	switch {
	case strings.Contains(cat.Name, "奇楠"):
		priceBase = 50000
	case strings.Contains(cat.Name, "精选香器"), strings.Contains(cat.Name, "线香"):
		priceBase = 500
	default:
		priceBase = 5000
	}

	out := make([]Product, 0, perCategoryCount)
	for i := 0; i < perCategoryCount; i++ {
		origin := generatedOrigins[rng.Intn(len(generatedOrigins))]
		adj := generatedAdjectives[rng.Intn(len(generatedAdjectives))]
		noun := nouns[rng.Intn(len(nouns))]
		series := strings.ReplaceAll(cat.Name, "沉香", "")
		p := Product{
			ID:               fmt.Sprintf("gen-%s-%d", cat.ID, startID+i),
			Name:             fmt.Sprintf("%s%s%s【%s系列】", origin, adj, noun, series),
			Brand:            "承香自营",
			Price:            rng.Int63n(priceBase*2) + priceBase,
			Image:            productImage,
			Tag:              cat.Name, // category name in tag drives the heuristic match
			Rating:           float64(40+rng.Intn(11)) / 10,
			Origin:           origin,
			ShortDescription: fmt.Sprintf("[%s新品] 来自%s的%s%s，油脂丰富，香韵迷人。", cat.Name, origin, adj, noun),
			DetailBody:       stockDetailBody,
			Variants:         stockVariants,
			Reviews:          stockReviews,
		}
		out = append(out, p)
	}
	return out
}

// generateExtras builds the generated long tail and deals it across the three
// headline collections so every category shows up on the home carousels too.
func generateExtras() (hot, best, newArrivals []Product) {
	rng := rand.New(rand.NewSource(generatorSeed))
	var all []Product
	for i, cat := range Categories {
		all = append(all, generateCategoryProducts(rng, cat, (i+1)*1000)...)
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	chunk := (len(all) + 2) / 3
	hot = all[:chunk]
	best = all[chunk : chunk*2]
	newArrivals = all[chunk*2:]
	return hot, best, newArrivals
}

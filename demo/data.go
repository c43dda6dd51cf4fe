package demo

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

const (
	MinSectionRows = 4
	MaxSectionRows = 16

	DefaultSections = 7
	MaxSections     = 64
)

var defaultCategories = []string{
	"Computers",
	"Women's goods",
	"Men's goods",
	"Skincare",
	"Leisure video",
	"Life services",
	"Books",
}

var extraCategories = []string{
	"Garden", "Toys", "Sports", "Music", "Pets", "Kitchen", "Outdoor", "Office",
	"Automotive", "Travel", "Jewelry", "Baby", "Health", "Groceries", "Tools",
}

var (
	productAdjectives = []string{"Compact", "Classic", "Deluxe", "Everyday", "Portable", "Vintage", "Smart", "Organic", "Limited", "Studio"}
	productNouns      = []string{"Bundle", "Kit", "Set", "Edition", "Pack", "Collection", "Series", "Box", "Selection", "Pass"}
)

// keySpace namespaces category keys so the same seed always yields the
// same keys.
var keySpace = uuid.MustParse("5b0f3e0a-8d7c-4f0e-9a51-3c2d6e8f1a47")

type Category struct {
	Key      string
	Name     string
	Rows     int
	Products []Product
}

type Product struct {
	Name  string
	Price int
}

// Generate builds count categories from seed. The first seven are the
// fixed classification list; the rest come from a second pool. Each
// section is 100 to 500 px tall on a phone, which maps to 4 to 16 rows.
func Generate(seed int64, count int) []Category {
	count = min(max(count, 1), MaxSections)
	r := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	out := make([]Category, 0, count)
	for i := 0; i < count; i++ {
		px := 100 + r.IntN(401)
		rows := MinSectionRows + (px-100)*(MaxSectionRows-MinSectionRows)/400
		cat := Category{
			Key:  uuid.NewSHA1(keySpace, []byte(strconv.FormatInt(seed, 10)+":"+strconv.Itoa(i))).String(),
			Name: categoryName(i),
			Rows: rows,
		}
		// One product per row inside the pane border.
		for j := 0; j < rows-2; j++ {
			cat.Products = append(cat.Products, Product{
				Name:  productAdjectives[r.IntN(len(productAdjectives))] + " " + productNouns[r.IntN(len(productNouns))],
				Price: 5 + r.IntN(495),
			})
		}
		out = append(out, cat)
	}
	return out
}

func categoryName(i int) string {
	if i < len(defaultCategories) {
		return defaultCategories[i]
	}
	i -= len(defaultCategories)
	name := extraCategories[i%len(extraCategories)]
	if round := i / len(extraCategories); round > 0 {
		name = fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}

func indexOfKey(cats []Category, key string) int {
	for i, c := range cats {
		if c.Key == key {
			return i
		}
	}
	return -1
}

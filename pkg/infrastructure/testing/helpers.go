// Package testing provides shared fixtures for the test suites: a small
// populated stand with ingredients, stock, and a menu.
package testing

import (
	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/infrastructure/repositories/memory"
)

// MustIngredient builds an ingredient or panics. Fixture-only.
func MustIngredient(id, name string, category entities.Category, subtype string, cost float64) *entities.Ingredient {
	ing, err := entities.NewIngredient(entities.IngredientID(id), name, category, subtype, decimal.NewFromFloat(cost))
	if err != nil {
		panic(err)
	}
	return ing
}

// MustHotDog builds a hot dog or panics. Fixture-only.
func MustHotDog(id, name string, bun, sausage *entities.Ingredient, toppings, sauces []*entities.Ingredient, side *entities.Ingredient, price float64) *entities.HotDog {
	hd, err := entities.NewHotDog(entities.HotDogID(id), name, bun, sausage, toppings, sauces, side, decimal.NewFromFloat(price))
	if err != nil {
		panic(err)
	}
	return hd
}

// BuildStandTestData builds the standard test scenario: a stocked catalog of
// two buns, two sausages, two toppings, one sauce, one side, and a menu of
// two hot dogs ("Clasico" with onion, ketchup; "Completo" with double onion,
// pickles, ketchup, and fries on the side).
func BuildStandTestData() (*memory.IngredientRepository, *memory.MenuRepository, *memory.StockLedger) {
	ingredients := memory.NewIngredientRepository()
	menu := memory.NewMenuRepository()
	stock := memory.NewStockLedger()

	bun := MustIngredient("ing_pan_clasico", "Pan clasico", entities.Bun, "Trigo", 0.8)
	bunIntegral := MustIngredient("ing_pan_integral", "Pan integral", entities.Bun, "Integral", 0.9)
	sausage := MustIngredient("ing_salchicha_res", "Salchicha de res", entities.Sausage, "Res", 1.5)
	sausagePollo := MustIngredient("ing_salchicha_pollo", "Salchicha de pollo", entities.Sausage, "Pollo", 1.2)
	onion := MustIngredient("ing_topping_cebolla", "Cebolla", entities.Topping, "Fresco", 0.4)
	pickles := MustIngredient("ing_topping_pepinillos", "Pepinillos", entities.Topping, "Encurtido", 0.4)
	ketchup := MustIngredient("ing_salsa_ketchup", "Ketchup", entities.Sauce, "Clasica", 0.3)
	fries := MustIngredient("ing_acompanante_papas", "Papas fritas", entities.Side, "Frito", 2.0)

	for _, ing := range []*entities.Ingredient{bun, bunIntegral, sausage, sausagePollo, onion, pickles, ketchup, fries} {
		ingredients.Add(ing)
	}

	stock.SetQuantity(bun.ID, 30)
	stock.SetQuantity(bunIntegral.ID, 30)
	stock.SetQuantity(sausage.ID, 25)
	stock.SetQuantity(sausagePollo.ID, 25)
	stock.SetQuantity(onion.ID, 50)
	stock.SetQuantity(pickles.ID, 50)
	stock.SetQuantity(ketchup.ID, 100)
	stock.SetQuantity(fries.ID, 20)

	clasico := MustHotDog("hd_clasico", "Clasico", bun, sausage,
		[]*entities.Ingredient{onion}, []*entities.Ingredient{ketchup}, nil, 5.0)
	completo := MustHotDog("hd_completo", "Completo", bunIntegral, sausagePollo,
		[]*entities.Ingredient{onion, onion, pickles}, []*entities.Ingredient{ketchup}, fries, 7.5)

	if err := menu.Add(clasico); err != nil {
		panic(err)
	}
	if err := menu.Add(completo); err != nil {
		panic(err)
	}

	return ingredients, menu, stock
}

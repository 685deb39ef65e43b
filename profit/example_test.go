package profit_test

import (
	"fmt"

	"github.com/utafrali/CommerceCalc/profit"
)

func ExampleCalculate() {
	result, _ := profit.Calculate(profit.Input{SalesPrice: 100, CostPrice: 60})
	fmt.Println(result.Profit, result.ProfitMargin)
	// Output: 40 40.00%
}

package main

import (
	"fmt"

	"github.com/meenmo/cpilib/inflation"
	"github.com/meenmo/cpilib/utils"
)

func main() {
	inflation.SetEvaluationDate(utils.DateParser("2020-03-15"))

	ukRPI := inflation.NewZeroIndex(
		"RPI",
		inflation.Region{Name: "UK", Code: "GB"},
		false, // revised
		false, // interpolated
		inflation.Monthly,
		inflation.Tenor{N: 1, Unit: inflation.UnitMonths},
		"GBP",
		nil,
	)

	fixings := map[string]float64{
		"2019-11-01": 291.0,
		"2019-12-01": 291.9,
		"2020-01-01": 290.6,
		"2020-02-01": 292.0,
	}
	for date, value := range fixings {
		if err := ukRPI.AddFixing(utils.DateParser(date), value, false); err != nil {
			fmt.Println(err)
			return
		}
	}

	for _, date := range []string{"2020-01-01", "2020-01-20", "2020-02-14"} {
		fixing, err := ukRPI.Fixing(utils.DateParser(date))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s fixing %s: %.2f\n", ukRPI.Name(), date, fixing)
	}

	lagged, err := inflation.LaggedFixing(
		ukRPI,
		utils.DateParser("2020-02-14"),
		inflation.Tenor{N: 3, Unit: inflation.UnitMonths},
		inflation.InterpFlat,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s lagged (3M, Flat) 2020-02-14: %.2f\n", ukRPI.Name(), lagged)
}

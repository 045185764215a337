package analysis

import "github.com/lox/drawstats/internal/lottery"

func draw(front []int, back []int) lottery.Draw {
	return lottery.Draw{Front: front, Back: back}
}

// hotSevenHistory builds 20 draws where 7 appears every time and every other
// front number appears at most twice.
func hotSevenHistory() []lottery.Draw {
	others := []int{1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21,
		22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35}
	draws := make([]lottery.Draw, 0, 20)
	pos := 0
	for i := 0; i < 20; i++ {
		front := []int{7}
		for len(front) < 5 {
			front = append(front, others[pos%len(others)])
			pos++
		}
		draws = append(draws, draw(front, []int{1 + i%12, 1 + (i+5)%12}))
	}
	return draws
}

// SPDX-License-Identifier: GPL-3.0-or-later

package solver

import (
	_ "github.com/thatmisaki/aoc-2024/solver/locations"
	_ "github.com/thatmisaki/aoc-2024/solver/memory"
	_ "github.com/thatmisaki/aoc-2024/solver/printqueue"
	_ "github.com/thatmisaki/aoc-2024/solver/reports"
	_ "github.com/thatmisaki/aoc-2024/solver/wordsearch"
)

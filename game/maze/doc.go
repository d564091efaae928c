/*
Package maze provides the building blocks of a shifting maze.

The maze is never materialized as a grid. It is described by the `Walls`
of the junction the player currently stands on, and those walls are
regenerated at random every time the player moves, except for the way back.

The package defines `Coordinate` with Manhattan distance, the four compass
`Direction`s, the `Player` and helpers to draw random goal locations.
*/
package maze

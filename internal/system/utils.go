// internal/system/utils.go
package system

import (
	"go-planes/internal/entity"

	"github.com/yohamta/donburi"
)

// despawnAll удаляет сущности, собранные во время обхода запроса.
// Удалять прямо внутри Each нельзя: это меняет хранилище под итератором.
func despawnAll(ecs *entity.ECS, entities []donburi.Entity) {
	for _, e := range entities {
		ecs.Despawn(e)
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

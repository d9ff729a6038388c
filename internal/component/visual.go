// internal/component/visual.go
package component

import "github.com/yohamta/donburi"

// DamageFlashData указывает, что сущность должна быть отрисована цветом урона.
type DamageFlashData struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

var DamageFlash = donburi.NewComponentType[DamageFlashData]()

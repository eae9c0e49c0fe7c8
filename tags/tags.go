package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Effect = donburi.NewTag().SetName("Effect")
	Zone   = donburi.NewTag().SetName("Zone")
)

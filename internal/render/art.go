package render

// Banner art in the figlet "small" font, shared by both frontends.

var TitleArt = []string{
	`__      __    _     ___   ___   ___   ___   ___   _      ___  `,
	`\ \    / /   /_\   | _ \ | _ \ | __| |_ _| | __| | |    |   \ `,
	` \ \/\/ /   / _ \  |   / |  _/ | _|   | |  | _|  | |__  | |) |`,
	`  \_/\_/   /_/ \_\ |_|_\ |_|   |_|   |___| |___| |____| |___/ `,
}

var GameOverArt = []string{
	`  ___     _     __  __   ___       ___   __   __  ___   ___ `,
	` / __|   /_\   |  \/  | | __|     / _ \  \ \ / / | __| | _ \`,
	`| (_ |  / _ \  | |\/| | | _|     | (_) |  \ V /  | _|  |   /`,
	` \___| /_/ \_\ |_|  |_| |___|     \___/    \_/   |___| |_|_\`,
}

var PausedArt = []string{
	` ___     _     _   _   ___   ___   ___  `,
	`| _ \   /_\   | | | | / __| | __| |   \ `,
	`|  _/  / _ \  | |_| | \__ \ | _|  | |) |`,
	`|_|   /_/ \_\  \___/  |___/ |___| |___/ `,
}

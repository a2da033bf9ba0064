package tz

import "time"

// Seoul is the Asia/Seoul location (KST, no DST). The daily quota window and
// health timestamps follow it regardless of where the bot is hosted.
var Seoul *time.Location

func init() {
	var err error
	Seoul, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic("tz: load Asia/Seoul: " + err.Error())
	}
}

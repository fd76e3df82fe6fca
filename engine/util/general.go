package util

import (
	"encoding/json"
)

func FromJson(data string, msg any) bool {
	err := json.Unmarshal([]byte(data), msg)
	if err != nil {
		println(err.Error())
		return false
	}
	return true
}

func MustSend(err error) {
	if err != nil {
		println(err.Error())
		panic(err)
	}
}

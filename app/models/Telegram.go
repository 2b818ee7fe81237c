package models

// Minimal Telegram webhook payloads. Only the fields the bot reads are
// declared; the rest of the update is ignored.

type TgUpdate struct {
	UpdateId int64      `json:"update_id"`
	Message  *TgMessage `json:"message"`
}

type TgMessage struct {
	MessageId int64   `json:"message_id"`
	From      *TgUser `json:"from"`
	Chat      TgChat  `json:"chat"`
	Text      string  `json:"text"`
}

type TgUser struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

type TgChat struct {
	Id int64 `json:"id"`
}

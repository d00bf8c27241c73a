package service

const (
	textChooseCurrency     = "Выберите валюту для оплаты:"
	textUnavailable        = "Информация временно недоступна. Попробуйте позже или напишите администратору."
	textDocumentMissing    = "Файл с информацией о курсе временно недоступен."
	textSendScreenshot     = "Отправьте скриншот оплаты в этот чат, просто прикрепите фото."
	textSendToAdminFormat  = "Пожалуйста, отправьте %s скриншот оплаты в личные сообщения, и мы сразу же отправим Вам ссылку на курс."
	textCopyHint           = "Нажмите на номер ниже, чтобы скопировать его:"
	textScreenshotReceived = "Мы получили фото, проверим его и сразу же отправим Вам ссылку на курс."
	textAdminNotFound      = "Не удалось передать скриншот: администратор сейчас недоступен в боте. Пожалуйста, отправьте скриншот %s в личные сообщения."
	textForwardFailed      = "Не удалось передать скриншот из-за ошибки Telegram. Пожалуйста, отправьте скриншот %s в личные сообщения."
	textAnyAdmin           = "администратору"
)

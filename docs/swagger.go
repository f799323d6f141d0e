// Package docs Eco Travel Service API.
//
// Сервис оценки стоимости и выбросов CO2 поездки: сравнивает транспорт, проживание
// и питание, рекомендует комбинацию с минимальным eco-score.
//
// Основные возможности:
// - Оценка поездки с рекомендацией, топ-3 и эко-уровнем
// - Сравнение видов транспорта для группы
// - Справочник направлений, городов и опций
// - Учётные записи (создание, проверка пароля, сброс)
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs

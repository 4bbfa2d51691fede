package service

import (
	"hangman_web/internal/models"
)

// defaultWords 是預設字庫：45 個西班牙文謎底，依實際字長分成三個難度
func defaultWords() []models.Word {
	return []models.Word{
		// 簡單（3-5 個字母）
		{Word: "casa", Category: "objetos", Difficulty: models.DifficultyEasy, Hint: "Construcción donde vive una familia"},
		{Word: "perro", Category: "animales", Difficulty: models.DifficultyEasy, Hint: "Animal doméstico fiel y leal al hombre"},
		{Word: "agua", Category: "naturaleza", Difficulty: models.DifficultyEasy, Hint: "Líquido transparente esencial para la vida"},
		{Word: "sol", Category: "naturaleza", Difficulty: models.DifficultyEasy, Hint: "Estrella que ilumina y calienta la Tierra"},
		{Word: "mesa", Category: "objetos", Difficulty: models.DifficultyEasy, Hint: "Mueble plano con patas para comer o trabajar"},
		{Word: "libro", Category: "objetos", Difficulty: models.DifficultyEasy, Hint: "Conjunto de páginas con texto para leer"},
		{Word: "gato", Category: "animales", Difficulty: models.DifficultyEasy, Hint: "Felino doméstico que maúlla y ronronea"},
		{Word: "flor", Category: "naturaleza", Difficulty: models.DifficultyEasy, Hint: "Parte colorida y aromática de las plantas"},
		{Word: "pan", Category: "comida", Difficulty: models.DifficultyEasy, Hint: "Alimento básico hecho con harina y agua"},
		{Word: "mar", Category: "naturaleza", Difficulty: models.DifficultyEasy, Hint: "Gran extensión de agua salada"},
		{Word: "ojo", Category: "cuerpo", Difficulty: models.DifficultyEasy, Hint: "Órgano de la vista en los seres vivos"},
		{Word: "pie", Category: "cuerpo", Difficulty: models.DifficultyEasy, Hint: "Extremidad inferior para caminar"},
		{Word: "luz", Category: "naturaleza", Difficulty: models.DifficultyEasy, Hint: "Energía que permite ver las cosas"},
		{Word: "niño", Category: "personas", Difficulty: models.DifficultyEasy, Hint: "Persona de corta edad"},
		{Word: "amor", Category: "emociones", Difficulty: models.DifficultyEasy, Hint: "Sentimiento profundo de cariño"},

		// 中等（6-8 個字母）
		{Word: "elefante", Category: "animales", Difficulty: models.DifficultyMedium, Hint: "Mamífero gigante con trompa larga y orejas grandes"},
		{Word: "montaña", Category: "naturaleza", Difficulty: models.DifficultyMedium, Hint: "Elevación natural muy alta del terreno"},
		{Word: "hospital", Category: "lugares", Difficulty: models.DifficultyMedium, Hint: "Edificio donde atienden a los enfermos"},
		{Word: "guitarra", Category: "objetos", Difficulty: models.DifficultyMedium, Hint: "Instrumento musical de seis cuerdas"},
		{Word: "mariposa", Category: "animales", Difficulty: models.DifficultyMedium, Hint: "Insecto volador con alas coloridas y delicadas"},
		{Word: "chocolate", Category: "comida", Difficulty: models.DifficultyMedium, Hint: "Dulce hecho con cacao, muy popular"},
		{Word: "ventana", Category: "objetos", Difficulty: models.DifficultyMedium, Hint: "Abertura en la pared para ver afuera"},
		{Word: "escuela", Category: "lugares", Difficulty: models.DifficultyMedium, Hint: "Lugar donde los niños van a aprender"},
		{Word: "corazón", Category: "cuerpo", Difficulty: models.DifficultyMedium, Hint: "Órgano que bombea sangre por el cuerpo"},
		{Word: "planeta", Category: "naturaleza", Difficulty: models.DifficultyMedium, Hint: "Cuerpo celeste que orbita una estrella"},
		{Word: "familia", Category: "personas", Difficulty: models.DifficultyMedium, Hint: "Grupo de personas unidas por parentesco"},
		{Word: "jardín", Category: "lugares", Difficulty: models.DifficultyMedium, Hint: "Espacio con plantas y flores cultivadas"},
		{Word: "teléfono", Category: "objetos", Difficulty: models.DifficultyMedium, Hint: "Aparato para comunicarse a distancia"},
		{Word: "película", Category: "entretenimiento", Difficulty: models.DifficultyMedium, Hint: "Historia filmada para ver en cine"},
		{Word: "español", Category: "idiomas", Difficulty: models.DifficultyMedium, Hint: "Idioma que se habla en España y América"},

		// 困難（9 個字母以上）
		{Word: "refrigerador", Category: "objetos", Difficulty: models.DifficultyHard, Hint: "Electrodoméstico que mantiene los alimentos fríos"},
		{Word: "arquitectura", Category: "profesiones", Difficulty: models.DifficultyHard, Hint: "Arte y ciencia de diseñar y construir edificios"},
		{Word: "democracia", Category: "política", Difficulty: models.DifficultyHard, Hint: "Sistema de gobierno donde el pueblo elige"},
		{Word: "fotosíntesis", Category: "ciencia", Difficulty: models.DifficultyHard, Hint: "Proceso donde las plantas producen alimento con luz"},
		{Word: "paleontología", Category: "ciencia", Difficulty: models.DifficultyHard, Hint: "Ciencia que estudia fósiles de seres antiguos"},
		{Word: "psicología", Category: "ciencia", Difficulty: models.DifficultyHard, Hint: "Ciencia que estudia la mente y comportamiento"},
		{Word: "extraordinario", Category: "adjetivos", Difficulty: models.DifficultyHard, Hint: "Algo que sale de lo común, muy especial"},
		{Word: "responsabilidad", Category: "valores", Difficulty: models.DifficultyHard, Hint: "Obligación de responder por los propios actos"},
		{Word: "computadora", Category: "objetos", Difficulty: models.DifficultyHard, Hint: "Máquina electrónica para procesar información"},
		{Word: "biblioteca", Category: "lugares", Difficulty: models.DifficultyHard, Hint: "Lugar donde se guardan y consultan libros"},
		{Word: "universidad", Category: "lugares", Difficulty: models.DifficultyHard, Hint: "Institución de educación superior"},
		{Word: "investigación", Category: "ciencia", Difficulty: models.DifficultyHard, Hint: "Proceso de búsqueda de conocimiento nuevo"},
		{Word: "comunicación", Category: "conceptos", Difficulty: models.DifficultyHard, Hint: "Intercambio de información entre personas"},
		{Word: "transformación", Category: "conceptos", Difficulty: models.DifficultyHard, Hint: "Cambio completo de forma o naturaleza"},
		{Word: "biodiversidad", Category: "naturaleza", Difficulty: models.DifficultyHard, Hint: "Variedad de vida en el planeta Tierra"},
	}
}

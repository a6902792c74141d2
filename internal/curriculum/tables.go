package curriculum

// Official topic tables from the BOE programme (OEP 2025 TCEE,
// Resolución de 22 de diciembre de 2025). Topics without a File have no
// published material yet and stay in the catalog as unavailable.

// Tercer ejercicio, Parte A: Economía general.
var tercerEjercicioParteA = []Topic{
	{Number: 1, Title: "Objeto y métodos de la ciencia económica. Cuestiones y debates actuales, con especial referencia a la economía conductual.", Available: true, File: "3A01.pdf"},
	{Number: 2, Title: "Los economistas clásicos y Marx.", Available: true, File: "3A02.pdf"},
	{Number: 3, Title: "Los economistas neoclásicos.", Available: true, File: "3A03.pdf"},
	{Number: 4, Title: "El pensamiento económico de Keynes. Referencia a la economía postkeynesiana y el desequilibrio.", Available: true, File: "3A04.pdf"},
	{Number: 5, Title: "La síntesis neoclásica. El monetarismo."},
	{Number: 6, Title: "La nueva macroeconomía clásica. La hipótesis de las expectativas racionales; la crítica de Lucas; el surgimiento de los modelos dinámicos estocásticos de equilibrio general.", Available: true, File: "3A06.pdf"},
	{Number: 7, Title: "La nueva economía keynesiana. Primera y segunda generación.", Available: true, File: "3A07.pdf"},
	{Number: 8, Title: "Teoría de la demanda del consumidor (I). Axiomas sobre las preferencias, función de utilidad y función de demanda marshalliana. La teoría de la preferencia revelada. Precios hedónicos.", Available: true, File: "3A08.pdf"},
	{Number: 9, Title: "Teoría de la demanda del consumidor (II). Dualidad e integrabilidad de las preferencias. Sistemas de demanda utilizados en estudios empíricos. Medidas de cambio en el bienestar.", Available: true, File: "3A09.pdf"},
	{Number: 10, Title: "Teoría de la demanda del consumidor (III). Elección del consumidor en situaciones de riesgo e incertidumbre.", Available: true, File: "3A10.pdf"},
	{Number: 11, Title: "Teoría de la producción. Caracterización de la tecnología de la empresa a corto y largo plazo. El conjunto de posibilidades de producción. La función de producción. Rendimientos locales y globales a escala. Elasticidad de sustitución. Producción conjunta.", Available: true, File: "3A11.pdf"},
	{Number: 12, Title: "Teoría de los costes. Análisis de dualidad en el ámbito de la empresa. Aplicaciones empíricas.", Available: true, File: "3A12.pdf"},
	{Number: 13, Title: "Economía de la información y teoría de la agencia: selección adversa y riesgo moral.", Available: true, File: "3A13.pdf"},
	{Number: 14, Title: "Teoría de juegos. Principales conceptos. Aplicaciones, con especial referencia a las subastas."},
	{Number: 15, Title: "La empresa: el tamaño eficiente y sus límites. Mención especial de la economía de los costes de transacción. La Teoría de la Organización Industrial: barreras a la entrada y mercados impugnables."},
	{Number: 16, Title: "Análisis de mercados (I). El modelo de competencia perfecta. Análisis de equilibrio parcial: corto y largo plazo; dinámicas de ajuste y estabilidad del equilibrio. Análisis de eficiencia y bienestar.", Available: true, File: "3A16.pdf"},
	{Number: 17, Title: "Análisis de mercados (II). Teoría del monopolio. Discriminación de precios. Monopolio natural. Producción conjunta. Análisis de eficiencia y bienestar. Monopsonio. Monopolio bilateral.", Available: true, File: "3A17.pdf"},
	{Number: 18, Title: "Análisis de mercados (III). Diferenciación de productos: la teoría de la competencia monopolística y otros desarrollos.", Available: true, File: "3A18.pdf"},
	{Number: 19, Title: "Análisis de mercados (IV). Teoría del oligopolio: soluciones no cooperativas y soluciones cooperativas.", Available: true, File: "3A19.pdf"},
	{Number: 20, Title: "Poder de mercado y regulación óptima. Definición del mercado relevante. Desarrollos en presencia de información asimétrica. Aplicaciones prácticas."},
	{Number: 21, Title: "La teoría del equilibrio general.", Available: true, File: "3A21.pdf"},
	{Number: 22, Title: "Economía del bienestar (I). Los teoremas fundamentales del bienestar. Óptimo económico y «second-best».", Available: true, File: "3A22.pdf"},
	{Number: 23, Title: "Economía del bienestar (II). Fallos de mercado: externalidades y bienes públicos. Intervención y fallos del sector público.", Available: true, File: "3A23.pdf"},
	{Number: 24, Title: "Economía del bienestar (III). Las funciones de bienestar social. Teoría de la elección colectiva. El teorema de imposibilidad de Arrow y desarrollos posteriores.", Available: true, File: "3A24.pdf"},
	{Number: 25, Title: "La teoría neoclásica del mercado de trabajo. Análisis intertemporal de la oferta de trabajo. Teoría del capital humano. Función de ingresos de capital humano y evidencia empírica.", Available: true, File: "3A25.pdf"},
	{Number: 26, Title: "Desempleo friccional. La curva de Beveridge, el modelo de búsqueda y emparejamiento de Diamond, Mortensen y Pissarides. Costes de ajuste y dinámica de la demanda de trabajo.", Available: true, File: "3A26.pdf"},
	{Number: 27, Title: "Determinación de salarios: modelos de negociación, salarios de eficiencia y contratos implícitos.", Available: true, File: "3A27.pdf"},
	{Number: 28, Title: "La tasa natural de paro y la NAIRU. La persistencia del desempleo.", Available: true, File: "3A28.pdf"},
	{Number: 29, Title: "Modelización dinámica de las tomas de decisiones. Modelos de horizonte infinito y modelos de generaciones solapadas.", Available: true, File: "3A29.pdf"},
	{Number: 30, Title: "Magnitudes macroeconómicas y contabilidad nacional.", Available: true, File: "3A30.pdf"},
	{Number: 31, Title: "Análisis de las tablas «input-output»."},
	{Number: 32, Title: "El modelo de oferta y demanda agregada: determinación de renta e inflación en una economía abierta. Análisis de las políticas monetaria y fiscal, y de los shocks y políticas de oferta."},
	{Number: 33, Title: "Teorías de la demanda de consumo corriente: ciclo vital y renta permanente. La demanda de bienes de consumo duradero. Evidencia empírica e implicaciones de política económica.", Available: true, File: "3A33.pdf"},
	{Number: 34, Title: "Teorías de la inversión en bienes de equipo. Incertidumbre e irreversibilidad de la inversión. Implicaciones de política económica.", Available: true, File: "3A34.pdf"},
	{Number: 35, Title: "Teorías de la demanda de dinero. Implicaciones de política económica.", Available: true, File: "3A35.pdf"},
	{Number: 36, Title: "Política monetaria (I). El diseño y la instrumentación de la política monetaria.", Available: true, File: "3A36.pdf"},
	{Number: 37, Title: "Política monetaria (II). Los mecanismos de transmisión de la política monetaria convencional. Rigideces de precios, rigideces de salarios y fricciones financieras. Los mecanismos de transmisión de la política monetaria no convencional.", Available: true, File: "3A37.pdf"},
	{Number: 38, Title: "La política fiscal: efectos sobre el crecimiento económico y el ahorro.", Available: true, File: "3A38.pdf"},
	{Number: 39, Title: "Déficit público. Conceptos. Financiación y sus consecuencias macroeconómicas. Dominación monetaria y dominación fiscal. La dinámica de la deuda pública y su sostenibilidad.", Available: true, File: "3A39.pdf"},
	{Number: 40, Title: "Efectividad e interrelación de las políticas monetaria y fiscal en las principales economías desarrolladas desde la Gran Recesión de 2008. El valor de los multiplicadores fiscales."},
	{Number: 41, Title: "La inflación: causas y efectos sobre la eficiencia económica y el bienestar. Hiperinflación y deflación.", Available: true, File: "3A41.pdf"},
	{Number: 42, Title: "Teorías de los ciclos económicos: ciclos nominales y reales. Referencia al ciclo financiero y sus interrelaciones con el ciclo real.", Available: true, File: "3A42.pdf"},
	{Number: 43, Title: "Crecimiento económico (I). Acumulación de capital y progreso técnico exógeno. El modelo de Solow. El modelo de Solow aumentado con acumulación de capital humano. El modelo de Ramsey-Cass-Koopmans.", Available: true, File: "3A43.pdf"},
	{Number: 44, Title: "Crecimiento económico (II). Modelos de crecimiento endógeno: rendimientos crecientes, capital humano e innovación tecnológica.", Available: true, File: "3A44.pdf"},
	{Number: 45, Title: "Evidencia empírica sobre el crecimiento económico y la distribución de la renta entre los factores de producción. Contabilidad del crecimiento, con especial referencia a la productividad total de los factores. Convergencia económica internacional.", Available: true, File: "3A45.pdf"},
}

// Tercer ejercicio, Parte B: Economía Financiera, Economía Internacional y Relaciones Económicas Internacionales.
var tercerEjercicioParteB = []Topic{
	{Number: 1, Title: "La información financiera de las empresas: estados de situación y de circulación. Métodos de análisis económico y financiero de la empresa.", Available: true, File: "3B01.pdf"},
	{Number: 2, Title: "La empresa y las decisiones de inversión. Diferentes criterios de valoración de proyectos. Rentabilidad, riesgo y coste del capital.", Available: true, File: "3B02.pdf"},
	{Number: 3, Title: "La empresa y las decisiones de financiación: financiación propia frente a financiación ajena. Política de dividendos y estructura del capital.", Available: true, File: "3B03.pdf"},
	{Number: 4, Title: "Análisis del crecimiento de la empresa. Métodos de valoración de empresas. Especial referencia a los procesos de fusión, adquisición y alianzas estratégicas.", Available: true, File: "3B04.pdf"},
	{Number: 5, Title: "Teoría del comercio internacional (I). La teoría ricardiana de la ventaja comparativa. Determinación de la relación real de intercambio. El modelo de factores específicos. El Modelo Hecksher-Ohlin-Samuelson (H-O-S); teoremas derivados del modelo y extensiones.", Available: true, File: "3B05.pdf"},
	{Number: 6, Title: "Teoría del comercio internacional (II). Nueva teoría del comercio internacional. Especial referencia a la competencia imperfecta, los rendimientos crecientes y la heterogeneidad empresarial.", Available: true, File: "3B06.pdf"},
	{Number: 7, Title: "La política comercial (I). Instrumentos y efectos. Barreras arancelarias y no arancelarias. Otros instrumentos tradicionales.", Available: true, File: "3B07.pdf"},
	{Number: 8, Title: "La política comercial (II). La política comercial estratégica.", Available: true, File: "3B08.pdf"},
	{Number: 9, Title: "Comercio internacional y crecimiento económico. Especial referencia a los efectos del comercio sobre el crecimiento.", Available: true, File: "3B09.pdf"},
	{Number: 10, Title: "Teoría de la integración económica.", Available: true, File: "3B10.pdf"},
	{Number: 11, Title: "Balanza de pagos: concepto, medición e interpretación.", Available: true, File: "3B11.pdf"},
	{Number: 12, Title: "Mecanismos de ajuste de la balanza de pagos. Especial referencia al enfoque intertemporal de balanza de pagos. Análisis de sostenibilidad del déficit y de la deuda exterior.", Available: true, File: "3B12.pdf"},
	{Number: 13, Title: "Mercados de divisas: operaciones e instrumentos.", Available: true, File: "3B13.pdf"},
	{Number: 14, Title: "Teorías de la determinación del tipo de cambio.", Available: true, File: "3B14.pdf"},
	{Number: 15, Title: "Análisis comparado de los distintos regímenes cambiarios. Intervención y regulación de los mercados de cambio.", Available: true, File: "3B15.pdf"},
	{Number: 16, Title: "Teoría de la integración monetaria.", Available: true, File: "3B16.pdf"},
	{Number: 17, Title: "Teorías explicativas de las crisis de balanza de pagos.", Available: true, File: "3B17.pdf"},
	{Number: 18, Title: "La nueva globalización económica y financiera. Determinantes y efectos de los movimientos internacionales de factores productivos: movilidad de trabajadores, inversión de cartera e inversión directa, con especial referencia a las cadenas globales de valor."},
	{Number: 19, Title: "La coordinación internacional de políticas económicas. Aspectos teóricos y prácticos. El G-20, la OCDE y otros foros internacionales.", Available: true, File: "3B19.pdf"},
	{Number: 20, Title: "El sistema económico internacional desde el siglo XIX hasta la ruptura del sistema de Bretton-Woods.", Available: true, File: "3B20.pdf"},
	{Number: 21, Title: "El sistema económico internacional desde la desaparición del sistema de Bretton-Woods.", Available: true, File: "3B21.pdf"},
	{Number: 22, Title: "El Fondo Monetario Internacional. Estructura y políticas. La prevención y solución de crisis.", Available: true, File: "3B22.pdf"},
	{Number: 23, Title: "Análisis de los instrumentos financieros de renta variable. Análisis fundamental. Teoría de la elección de cartera. El modelo de valoración de los activos de capital (CAPM). La teoría de valoración de activos por arbitraje (APT). Análisis técnico.", Available: true, File: "3B23.pdf"},
	{Number: 24, Title: "Análisis de los instrumentos de renta fija. Determinación del precio y rendimiento de los bonos. La estructura temporal de los tipos de interés. Valoración del riesgo y del rendimiento de los bonos: duración y convexidad.", Available: true, File: "3B24.pdf"},
	{Number: 25, Title: "Análisis de los instrumentos y de los mercados de derivados.", Available: true, File: "3B25.pdf"},
	{Number: 26, Title: "Crisis financieras y pánicos bancarios; especial referencia a la crisis financiera internacional iniciada en 2007-2008. Gestión de riesgos de las instituciones financieras."},
	{Number: 27, Title: "Regulación financiera bancaria y no-bancaria. Fundamentos teóricos y evidencia empírica.", Available: true, File: "3B27.pdf"},
	{Number: 28, Title: "Economía de los países en desarrollo. Teorías recientes del desarrollo económico. Evidencia empírica, con especial referencia a la aproximación experimental, e implicaciones para el diseño de políticas.", Available: true, File: "3B28.pdf"},
	{Number: 29, Title: "La financiación exterior del desarrollo económico. El problema de la deuda externa. La ayuda al desarrollo."},
	{Number: 30, Title: "El Grupo del Banco Mundial, los Bancos Regionales de Desarrollo y otras instituciones financieras multilaterales de desarrollo."},
	{Number: 31, Title: "El cambio climático y su impacto en la economía. Evidencia y modelos integrados de evaluación. Acuerdos internacionales y principales medidas adoptadas para hacer frente al cambio climático."},
	{Number: 32, Title: "Perspectivas económicas mundiales. Estructura sectorial y geográfica de los flujos comerciales y financieros internacionales. Las nuevas áreas emergentes."},
	{Number: 33, Title: "La OMC. Antecedentes y Organización actual. El GATT y los Acuerdos sobre el comercio de mercancías. Situación actual.", Available: true, File: "3B33.pdf"},
	{Number: 34, Title: "La OMC. Los acuerdos distintos de los de mercancías.", Available: true, File: "3B34.pdf"},
	{Number: 35, Title: "Procesos de integración no comunitarios.", Available: true, File: "3B35.pdf"},
	{Number: 36, Title: "Tratados, orden jurídico e instituciones de la Unión Europea.", Available: true, File: "3B36.pdf"},
	{Number: 37, Title: "Las finanzas de la Unión Europea y el presupuesto comunitario. El marco financiero plurianual actual.", Available: true, File: "3B37.pdf"},
	{Number: 38, Title: "La política agrícola de la Unión Europea. Problemas económicos y procesos de reforma. La política pesquera común."},
	{Number: 39, Title: "El mercado único de la Unión Europea. El principio de libre circulación de mercancías, servicios, personas y capitales. La política de competencia.", Available: true, File: "3B39.pdf"},
	{Number: 40, Title: "La Cohesión Económica y Social en la Unión Europea: política regional e instrumentos presupuestarios y financieros. Política social y de empleo. El proceso de convergencia real en la Unión Europea.", Available: true, File: "3B40.pdf"},
	{Number: 41, Title: "La política comercial de la Unión Europea.", Available: true, File: "3B41.pdf"},
	{Number: 42, Title: "Las relaciones económicas exteriores de la Unión Europea. La política de cooperación al desarrollo de la Unión Europea.", Available: true, File: "3B42.pdf"},
	{Number: 43, Title: "El origen del euro: funcionamiento y evolución del Sistema Monetario Europeo. Los criterios de convergencia nominal. El Sistema Europeo de Bancos Centrales: objetivos e instrumentos. La política monetaria en la Eurozona desde 2009."},
	{Number: 44, Title: "La Unión Bancaria: Pilares y Código normativo único. La Unión de Mercados de Capitales."},
	{Number: 45, Title: "La gobernanza económica de la Unión Europea y de la zona euro. El Semestre Europeo. Las reglas fiscales y el Procedimiento de Desequilibrios Macroeconómicos. El Mecanismo Europeo de Estabilidad. La respuesta común de política fiscal a partir de la covid-19."},
}

// Cuarto ejercicio, Parte A: Economía española.
var cuartoEjercicioParteA = []Topic{
	{Number: 1, Title: "Fuentes estadísticas españolas. Metodologías y limitaciones.", Available: true, File: "4A01.pdf"},
	{Number: 2, Title: "Los recursos humanos en España: estructura demográfica y capital humano. Proyecciones de población a medio y largo plazo: implicaciones para el crecimiento económico."},
	{Number: 3, Title: "La distribución personal y entre factores productivos de la renta en España. La desigualdad de la renta, la riqueza y el consumo. El efecto redistributivo del sector público español."},
	{Number: 4, Title: "Los sectores agrario y pesquero en España."},
	{Number: 5, Title: "Estructura del sector energético y sus subsectores: sistema eléctrico, sistema gasista y productos petrolíferos. Nuevas tecnologías y retos del sector."},
	{Number: 6, Title: "La política española de energía y clima: mitigación y adaptación al cambio climático. Vinculación con la política de energía y clima de la UE. Políticas sectoriales de medioambiente."},
	{Number: 7, Title: "El sistema y la política de ciencia y tecnología en España. Vinculación con la política de I+D de la Unión Europea. La actividad de investigación, desarrollo e innovación (I+D+i) en los sectores público y privado. Comparación con buenas prácticas internacionales."},
	{Number: 8, Title: "La empresa en España. Características principales: productividad, internacionalización, tamaño y financiación. Comparación entre la empresa industrial y la empresa de servicios. El clima de negocio en España. El sector público empresarial."},
	{Number: 9, Title: "Análisis de la industria en España. Características y situación actual. Los retos de la industria y la política industrial en España en el contexto de las economías desarrolladas. La estrategia de la UE."},
	{Number: 10, Title: "Estructura sectorial de la industria en España. Clasificación de sectores según nivel de contenido tecnológico y de demanda. Análisis de los principales sectores: industria agroalimentaria, industria automovilística, industria química y farmacéutica, e industria de fabricación de bienes de equipo y de alta tecnología."},
	{Number: 11, Title: "El sector de la construcción en España. El mercado de la vivienda. Problemas y política de vivienda y suelo.", Available: true, File: "4A11.pdf"},
	{Number: 12, Title: "Estructura y política de los sectores de los transportes y las telecomunicaciones en España.", Available: true, File: "4A12.pdf"},
	{Number: 13, Title: "El turismo en España: evolución, retos y política turística.", Available: true, File: "4A13.pdf"},
	{Number: 14, Title: "Estructura, políticas y retos de la distribución comercial, con especial referencia al comercio electrónico.", Available: true, File: "4A14.pdf"},
	{Number: 15, Title: "La defensa y la promoción de la competencia en España. Principios de regulación económica eficiente. Garantía de unidad de mercado.", Available: true, File: "4A15.pdf"},
	{Number: 16, Title: "Mercado de trabajo en España. Características, funcionamiento y problemas. Las políticas de empleo.", Available: true, File: "4A16.pdf"},
	{Number: 17, Title: "Economía de las regiones españolas: especialización regional, convergencia real y política de desarrollo regional.", Available: true, File: "4A17.pdf"},
	{Number: 18, Title: "Sistema financiero español (I). Evolución reciente del sistema financiero. Génesis y desarrollo de la crisis del sistema financiero español iniciada en 2008. La reestructuración de las entidades de crédito. El Programa de Asistencia Financiera.", Available: true, File: "4A18.pdf"},
	{Number: 19, Title: "Sistema financiero español (II). Las entidades de crédito en España: Configuración actual del sector bancario español y principales indicadores. El marco de regulación, supervisión y gestión de crisis.", Available: true, File: "4A19.pdf"},
	{Number: 20, Title: "Sistema financiero español (III). Mercados de valores y otras formas de financiación no bancaria, agentes e instrumentos. Innovación financiera.", Available: true, File: "4A20.pdf"},
	{Number: 21, Title: "Análisis de la evolución de la balanza de pagos y de la Posición de Inversión Internacional de España desde la adopción del euro. Posición neta del Banco de España frente al Eurosistema. La sostenibilidad externa.", Available: true, File: "4A21.pdf"},
	{Number: 22, Title: "La internacionalización de la economía española (I). Estructura sectorial y geográfica de la balanza de bienes y de servicios en España en la actualidad. Indicadores de competitividad. La integración de España en las cadenas globales de valor.", Available: true, File: "4A22.pdf"},
	{Number: 23, Title: "La internacionalización de la economía española (II). Estructura sectorial y geográfica de la inversión extranjera en España y de la inversión española en el exterior en la actualidad.", Available: true, File: "4A23.pdf"},
	{Number: 24, Title: "La política española de internacionalización (I). Instrumentos financieros de ayuda a la exportación y a la inversión exterior. Evaluación y comparación con buenas prácticas internacionales.", Available: true, File: "4A24.pdf"},
	{Number: 25, Title: "La política española de internacionalización (II). La promoción comercial. Organismos e instrumentos. Evaluación y comparación con buenas prácticas internacionales.", Available: true, File: "4A25.pdf"},
	{Number: 26, Title: "La política de cooperación al desarrollo en España. Instrumentos de cooperación técnica y financiera. Evaluación del diseño de la política y análisis de impacto económico.", Available: true, File: "4A26.pdf"},
	{Number: 27, Title: "La economía española en el período 1959-1999. El Plan de Estabilización de 1959. La economía española en la década de 1960. Las crisis energéticas de los años 70. La adhesión a las Comunidades Europeas. El proceso de ajuste macroeconómico para la entrada en la zona euro.", Available: true, File: "4A27.pdf"},
	{Number: 28, Title: "Evolución de la economía y de la política económica en España desde la constitución de la zona euro hasta 2019. Especial referencia a la crisis económica y financiera iniciada en 2008.", Available: true, File: "4A28.pdf"},
	{Number: 29, Title: "Evolución de la economía y de la política económica española desde la crisis de la Covid-19. Situación actual de la economía española y perspectivas. Los desequilibrios macroeconómicos de España, según el Procedimiento de Desequilibrios Macroeconómicos de la UE."},
	{Number: 30, Title: "Las relaciones financieras de España con la Unión Europea: flujos presupuestarios y extra-presupuestarios, y saldo financiero España-Unión Europea. Evolución reciente y situación actual. España en el Marco Financiero Plurianual 2021-2027. La convergencia real de España con la Unión Europea."},
}

// Cuarto ejercicio, Parte B: Economía del sector público.
var cuartoEjercicioParteB = []Topic{
	{Number: 1, Title: "El sector público: delimitación, operaciones y cuentas principales según el Sistema Europeo de Cuentas.", Available: true, File: "4B01.pdf"},
	{Number: 2, Title: "Los mecanismos de decisión del sector público. Reglas de votación. La democracia representativa. La producción pública y la burocracia. Justificación de la existencia de límites normativos a la actividad del sector público.", Available: true, File: "4B02.pdf"},
	{Number: 3, Title: "El presupuesto como elemento de redistribución. El Estado de Bienestar: instrumentos, problemas y reformas. Medición e indicadores del impacto redistributivo.", Available: true, File: "4B03.pdf"},
	{Number: 4, Title: "El presupuesto como elemento compensador de la actividad económica. Componentes discrecionales y automáticos del presupuesto: saldo cíclico, saldo estructural y esfuerzo fiscal.", Available: true, File: "4B04.pdf"},
	{Number: 5, Title: "El gasto público. Razones de su crecimiento. El debate sobre el tamaño del sector público, en lo referente al gasto. Comparaciones internacionales.", Available: true, File: "4B05.pdf"},
	{Number: 6, Title: "Evaluación de las políticas públicas. Técnicas de evaluación de impacto. Análisis coste-beneficio, análisis coste-eficacia y otras técnicas de evaluación.", Available: true, File: "4B06.pdf"},
	{Number: 7, Title: "Ingresos públicos. Elementos definidores y clases de impuestos. Principios impositivos.", Available: true, File: "4B07.pdf"},
	{Number: 8, Title: "Traslación e incidencia de los impuestos en mercados competitivos y monopolistas. Enfoques de equilibrio parcial y general.", Available: true, File: "4B08.pdf"},
	{Number: 9, Title: "Efecto renta y efecto sustitución de los impuestos. Concepto y medición del exceso de gravamen. Medidas de progresividad impositiva.", Available: true, File: "4B09.pdf"},
	{Number: 10, Title: "Imposición y oferta. Efectos incentivo de los impuestos.", Available: true, File: "4B10.pdf"},
	{Number: 11, Title: "La imposición óptima. Tipo impositivo óptimo. Regla de Ramsey. El compromiso entre eficiencia y equidad de la política tributaria.", Available: true, File: "4B11.pdf"},
	{Number: 12, Title: "La imposición directa: teoría y comparaciones internacionales.", Available: true, File: "4B12.pdf"},
	{Number: 13, Title: "La imposición indirecta: teoría y comparaciones internacionales.", Available: true, File: "4B13.pdf"},
	{Number: 14, Title: "La teoría del federalismo fiscal: la asignación óptima de las funciones entre los distintos niveles de gobierno para alcanzar el bienestar máximo. La financiación de las haciendas territoriales: impuestos, transferencias y deuda.", Available: true, File: "4B14.pdf"},
	{Number: 15, Title: "La empresa pública. Razones de su existencia. La política de privatizaciones. Comparaciones internacionales.", Available: true, File: "4B15.pdf"},
	{Number: 16, Title: "El impuesto sobre la renta de las personas físicas en España.", Available: true, File: "4B16.pdf"},
	{Number: 17, Title: "El impuesto sobre sociedades en España.", Available: true, File: "4B17.pdf"},
	{Number: 18, Title: "Fiscalidad internacional. El Impuesto sobre la Renta de no Residentes en España. Convenios de doble imposición, con especial referencia al modelo de la OCDE. El problema de la erosión de bases imponibles y propuestas de solución.", Available: true, File: "4B18.pdf"},
	{Number: 19, Title: "La imposición patrimonial en España: el impuesto sobre el patrimonio, el impuesto sobre sucesiones y donaciones, el impuesto sobre transmisiones patrimoniales y actos jurídicos documentados, y el impuesto sobre bienes inmuebles.", Available: true, File: "4B19.pdf"},
	{Number: 20, Title: "La imposición indirecta en España: el IVA y los impuestos especiales.", Available: true, File: "4B20.pdf"},
	{Number: 21, Title: "Marco legal e institucional de los presupuestos en España. Principios presupuestarios, con especial referencia a la estabilidad y la sostenibilidad. Los Presupuestos Generales del Estado: elaboración, aprobación, ejecución y control. Clasificaciones de ingresos y gastos. Modificaciones presupuestarias.", Available: true, File: "4B21.pdf"},
	{Number: 22, Title: "Las grandes cifras de los Presupuestos Generales del Estado (PGE). Clasificación económica, orgánica y por políticas de gasto. Visión consolidada de los PGE.", Available: true, File: "4B22.pdf"},
	{Number: 23, Title: "Las finanzas de las Administraciones Públicas en España en términos de contabilidad nacional. Situación actual y perspectivas según el Programa de Estabilidad. Estructura de ingresos y presión fiscal. Gasto por funciones según la clasificación COFOG. Distribución de gastos e ingresos públicos por subsectores de las Administraciones Públicas.", Available: true, File: "4B23.pdf"},
	{Number: 24, Title: "El Sistema de la Seguridad Social en España. Prestaciones y su financiación. La sostenibilidad del sistema público de pensiones."},
	{Number: 25, Title: "Las Administraciones Territoriales en España. Competencias y sistemas de financiación. El endeudamiento de las Administraciones Territoriales."},
	{Number: 26, Title: "El saldo presupuestario y la deuda de las Administraciones Públicas en España: análisis de su evolución reciente y comparación internacional. Política de financiación del Tesoro en la actualidad.", Available: true, File: "4B26.pdf"},
}

// Quinto ejercicio, Parte A: Marketing internacional y técnicas comerciales.
var quintoEjercicioParteA = []Topic{
	{Number: 1, Title: "Los regímenes de comercio exterior.", Available: true, File: "parte_A.pdf"},
	{Number: 2, Title: "Los instrumentos de defensa comercial.", Available: true, File: "parte_A.pdf"},
	{Number: 3, Title: "Los instrumentos de atracción de inversiones exteriores.", Available: true, File: "parte_A.pdf"},
	{Number: 4, Title: "Los instrumentos de promoción del turismo en España.", Available: true, File: "parte_A.pdf"},
	{Number: 5, Title: "La regulación de las inversiones extranjeras en España y de las españolas en el exterior.", Available: true, File: "parte_A.pdf"},
	{Number: 6, Title: "Formas de penetración e implantación en los mercados. El estudio de los mercados exteriores la prospección.", Available: true, File: "parte_A.pdf"},
	{Number: 7, Title: "Los canales de distribución y las redes de venta.", Available: true, File: "parte_A.pdf"},
	{Number: 8, Title: "La oferta internacional: el producto y el precio. La comunicación en el comercio internacional.", Available: true, File: "parte_A.pdf"},
	{Number: 9, Title: "El cuadro jurídico de las operaciones de comercio exterior: el contrato de venta internacional y la resolución de litigios.", Available: true, File: "parte_A.pdf"},
	{Number: 10, Title: "Las políticas logísticas y financieras de la empresa exportadora. Los medios de pago en el comercio internacional.", Available: true, File: "parte_A.pdf"},
}

// Quinto ejercicio, Parte B: Econometría.
var quintoEjercicioParteB = []Topic{
	{Number: 1, Title: "Supuestos clásicos del modelo de regresión lineal. Aproximación lineal al modelo no lineal. Método de mínimos cuadrados ordinarios y método de máxima verosimilitud. Medidas de bondad de ajuste del modelo.", Available: true, File: "parte_B.pdf"},
	{Number: 2, Title: "Propiedades de los estimadores de mínimos cuadrados ordinarios para muestras finitas y muestras grandes en el modelo de regresión lineal. Contraste de hipótesis e intervalos de confianza.", Available: true, File: "parte_B.pdf"},
	{Number: 3, Title: "Heterocedasticidad y autocorrelación: origen, consecuencias, detección y soluciones. Estimación por mínimos cuadrados generalizados.", Available: true, File: "parte_B.pdf"},
	{Number: 4, Title: "La causalidad en los modelos de regresión. Problema de la variable omitida y estimación por variables instrumentales. Otras soluciones: diseños experimentales, regresión en discontinuidad y diferencias en diferencias.", Available: true, File: "parte_B.pdf"},
	{Number: 5, Title: "Procesos estocásticos. Ruido blanco, AR, MA, ARMA y ARIMA: identificación, estimación, verificación y predicción.", Available: true, File: "parte_B.pdf"},
	{Number: 6, Title: "Datos de panel. Descripción del problema. El modelo de efectos fijos y de efectos aleatorios. Estimación.", Available: true, File: "parte_B.pdf"},
}

// Quinto ejercicio, Parte C: Derecho Administrativo y Organización del Estado.
var quintoEjercicioParteC = []Topic{
	{Number: 1, Title: "Las fuentes del derecho administrativo. La Constitución. La ley. Los decretos-leyes. La delegación legislativa."},
	{Number: 2, Title: "El reglamento. La potestad reglamentaria. Los reglamentos ilegales. Actos administrativos generales, circulares e instrucciones."},
	{Number: 3, Title: "El acto administrativo: concepto, clases y elementos. Su motivación y notificación. Eficacia y validez de los actos administrativos. Revisión, anulación y revocación."},
	{Number: 4, Title: "Los recursos administrativos."},
	{Number: 5, Title: "La jurisdicción contencioso-administrativa. Extensión y límites. Las partes del procedimiento. La sentencia. Recursos."},
	{Number: 6, Title: "Los contratos del sector público: concepto y clases. Estudio de sus elementos. Su cumplimiento. La revisión de precios y otras alteraciones contractuales. Incumplimiento de los contratos."},
	{Number: 7, Title: "El servicio público: concepto y clases. Forma de gestión de los servicios públicos. Examen especial de la gestión directa. La gestión indirecta: modalidades. La concesión. Régimen jurídico."},
	{Number: 8, Title: "Procedimiento administrativo común de las administraciones públicas: objeto y ámbito de aplicación. El procedimiento administrativo: concepto y naturaleza. Las garantías del procedimiento. Iniciación, ordenación, instrucción y terminación del procedimiento administrativo común. Los procedimientos especiales."},
	{Number: 9, Title: "Régimen jurídico del personal al servicio de las administraciones públicas. Ley del Estatuto Básico del Empleado Público. La Ley de Medidas para la Reforma de la Función Pública. Órganos superiores de la Función Pública. Oferta de empleo público."},
	{Number: 10, Title: "La Constitución española de 1978: estructura y contenido. Derechos y deberes fundamentales. Su garantía y suspensión. El Defensor del Pueblo. El Tribunal de Cuentas. El Tribunal Constitucional. Reforma de la Constitución."},
	{Number: 11, Title: "El Gobierno, su Presidente y el Consejo de Ministros. La Ley de Régimen Jurídico del Sector Público. Objeto y ámbito de aplicación. Principios generales. Organización y funcionamiento de la Administración General del Estado. Organización Central. Órganos Superiores y Directivos. Los Ministerios y su estructura interna. La Organización territorial de la Administración General del Estado. Las Delegaciones y Subdelegaciones del Gobierno."},
	{Number: 12, Title: "Organización y competencias del Ministerio de Economía, Comercio y Empresa. Especial mención a la Secretaría de Estado de Economía y Apoyo a la Empresa, y a la Secretaría de Estado de Comercio. Otros Ministerios económicos. La Administración Territorial del Ministerio de Economía, Comercio y Empresa. Su administración institucional. ICEX España Exportación e Inversiones."},
	{Number: 13, Title: "Organización territorial del Estado. Las Comunidades Autónomas: constitución, competencias, Estatutos de autonomía. El sistema institucional de las Comunidades Autónomas. La Administración Local."},
	{Number: 14, Title: "Políticas de igualdad de género. La Ley Orgánica 3/2007, de 22 de marzo, para la igualdad efectiva de mujeres y hombres. Políticas contra la violencia de género. La Ley Orgánica 1/2004, de 28 de diciembre, de Medidas de Protección Integral contra la Violencia de Género. Políticas dirigidas a la atención de personas discapacitadas y/o dependientes: la Ley 39/2006, de 14 de diciembre, de Promoción de la Autonomía Personal y atención a las personas en situación de dependencia. Igualdad de trato y no discriminación de las personas LGTBI."},
	{Number: 15, Title: "La gobernanza pública y el gobierno abierto. Concepto y principios informadores del gobierno abierto: colaboración, participación, transparencia y rendición de cuentas. Datos abiertos y reutilización. El marco jurídico y los planes de gobierno abierto en España."},
}
